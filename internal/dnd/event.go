package dnd

// EventType identifies a step of a drag gesture
type EventType int

const (
	DragStart EventType = iota
	DragOver
	DragLeave
	Drop
	DragEnd
)

func (t EventType) String() string {
	switch t {
	case DragStart:
		return "dragstart"
	case DragOver:
		return "dragover"
	case DragLeave:
		return "dragleave"
	case Drop:
		return "drop"
	case DragEnd:
		return "dragend"
	default:
		return "unknown"
	}
}

// DragEvent is handed to sources and targets during a gesture.
// Transfer is never nil for events dispatched by a Session.
type DragEvent struct {
	Type     EventType
	Transfer *DataTransfer

	defaultPrevented bool
}

// PreventDefault marks the event as handled. On DragOver this is how a
// target says it will accept a drop.
func (e *DragEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called
func (e *DragEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Draggable is implemented by views that can originate a drag
type Draggable interface {
	DragStartHandler(e *DragEvent)
	DragEndHandler(e *DragEvent)
}

// DragTarget is implemented by views that accept drops
type DragTarget interface {
	DragOverHandler(e *DragEvent)
	DropHandler(e *DragEvent)
	DragLeaveHandler(e *DragEvent)
}
