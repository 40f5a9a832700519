package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	CarryMode              // Keyboard drag: an item is grabbed and follows the hovered lane
	HelpMode               // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case CarryMode:
		return "carry"
	case HelpMode:
		return "help"
	default:
		return "normal"
	}
}

// UIState manages the user interface state.
// This includes lane/item selection, per-lane scrolling, terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selectedLane is the index of the currently selected lane
	selectedLane int

	// selectedItem is the index of the selected item within the selected lane
	selectedItem int

	// hoverLane is the lane a carried item is over in CarryMode
	hoverLane int

	// pointerDrag is set while a mouse drag is in progress
	pointerDrag bool

	width  int
	height int
	mode   Mode

	// scrollOffsets holds the index of the first visible item per lane
	scrollOffsets map[int]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:          NormalMode,
		scrollOffsets: make(map[int]int),
	}
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// SetWidth records the terminal width
func (s *UIState) SetWidth(w int) {
	s.width = w
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetHeight records the terminal height
func (s *UIState) SetHeight(h int) {
	s.height = h
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode
func (s *UIState) SetMode(m Mode) {
	s.mode = m
}

// SelectedLane returns the index of the selected lane
func (s *UIState) SelectedLane() int {
	return s.selectedLane
}

// SelectedItem returns the index of the selected item in the selected lane
func (s *UIState) SelectedItem() int {
	return s.selectedItem
}

// HoverLane returns the lane a carried item is over
func (s *UIState) HoverLane() int {
	return s.hoverLane
}

// SetHoverLane moves the carried item over lane i
func (s *UIState) SetHoverLane(i int) {
	s.hoverLane = i
}

// PointerDrag reports whether a mouse drag is in progress
func (s *UIState) PointerDrag() bool {
	return s.pointerDrag
}

// SetPointerDrag marks a mouse drag as started or finished
func (s *UIState) SetPointerDrag(b bool) {
	s.pointerDrag = b
}

// SetSelectedLane selects lane i and resets the item selection
func (s *UIState) SetSelectedLane(i int) {
	if i != s.selectedLane {
		s.selectedItem = 0
	}
	s.selectedLane = i
}

// SetSelectedItem selects item i within the selected lane
func (s *UIState) SetSelectedItem(i int) {
	s.selectedItem = i
}

// Select sets lane and item together
func (s *UIState) Select(lane, item int) {
	s.selectedLane = lane
	s.selectedItem = item
}

// ClampItem keeps the item selection within a lane of n items.
// An empty lane leaves the selection at 0.
func (s *UIState) ClampItem(n int) {
	if s.selectedItem >= n {
		s.selectedItem = n - 1
	}
	if s.selectedItem < 0 {
		s.selectedItem = 0
	}
}

// ScrollOffset returns the index of the first visible item in lane
func (s *UIState) ScrollOffset(lane int) int {
	return s.scrollOffsets[lane]
}

// EnsureVisible adjusts lane's scroll offset so item is on screen when the
// lane shows visible items at once and holds total items.
func (s *UIState) EnsureVisible(lane, item, visible, total int) {
	offset := s.scrollOffsets[lane]
	if item < offset {
		offset = item
	}
	if visible > 0 && item >= offset+visible {
		offset = item - visible + 1
	}
	if maxOffset := max(total-visible, 0); offset > maxOffset {
		offset = maxOffset
	}
	s.scrollOffsets[lane] = max(offset, 0)
}
