package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo is used for completed moves
	LevelInfo NotificationLevel = iota
	// LevelWarning is used for gestures that ended without a change
	LevelWarning
	// LevelError is used for gestures that could not be resolved
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState keeps the most recent gesture outcomes for the status bar.
// Older entries are dropped once the limit is reached.
type NotificationState struct {
	notifications []Notification
	limit         int
}

// DefaultNotificationLimit is how many notifications are retained
const DefaultNotificationLimit = 5

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{limit: DefaultNotificationLimit}
}

// Add appends a notification, dropping the oldest beyond the limit
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
	if over := len(s.notifications) - s.limit; over > 0 {
		s.notifications = s.notifications[over:]
	}
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications, oldest first.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// Latest returns the newest notification
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
