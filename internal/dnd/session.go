package dnd

// Session drives a single drag gesture from start to end and dispatches the
// events a browser would: dragstart to the source, dragover/dragleave to
// whatever target is under the pointer, drop to an accepting target, and
// dragend to the source.
//
// A zero Session is idle. Calls made while idle are ignored.
type Session struct {
	source   Draggable
	transfer *DataTransfer
	hovered  DragTarget
	accepted bool
	active   bool
}

// Result summarizes how a gesture ended
type Result struct {
	// Dropped is true when a target received a drop event
	Dropped bool
	// Target is the target that received the drop, if any
	Target DragTarget
	// Payload is the text payload at the end of the gesture
	Payload string
}

// Begin starts a gesture from source. An already active gesture is cancelled
// first.
func (s *Session) Begin(source Draggable) {
	if s.active {
		s.Cancel()
	}
	s.source = source
	s.transfer = NewDataTransfer()
	s.hovered = nil
	s.accepted = false
	s.active = true

	source.DragStartHandler(&DragEvent{Type: DragStart, Transfer: s.transfer})
}

// Active reports whether a gesture is in progress
func (s *Session) Active() bool {
	return s.active
}

// Source returns the current drag source, or nil when idle
func (s *Session) Source() Draggable {
	return s.source
}

// Hovered returns the target currently under the pointer, or nil
func (s *Session) Hovered() DragTarget {
	return s.hovered
}

// Accepted reports whether the hovered target accepted the last dragover
func (s *Session) Accepted() bool {
	return s.accepted
}

// Transfer returns the payload of the current gesture, or nil when idle
func (s *Session) Transfer() *DataTransfer {
	return s.transfer
}

// Over moves the pointer onto target and dispatches dragover to it. Moving
// from a different target dispatches dragleave to that one first.
func (s *Session) Over(target DragTarget) {
	if !s.active {
		return
	}
	if s.hovered != nil && s.hovered != target {
		s.leaveHovered()
	}
	s.hovered = target

	e := &DragEvent{Type: DragOver, Transfer: s.transfer}
	target.DragOverHandler(e)
	s.accepted = e.DefaultPrevented()
}

// Leave moves the pointer off any target
func (s *Session) Leave() {
	if !s.active || s.hovered == nil {
		return
	}
	s.leaveHovered()
}

// Release ends the gesture. The hovered target only receives a drop when it
// accepted the last dragover; otherwise the drop is rejected.
func (s *Session) Release() Result {
	if !s.active {
		return Result{}
	}

	res := Result{Payload: s.transfer.GetData(MediaTypeText)}
	if s.hovered != nil && s.accepted {
		s.hovered.DropHandler(&DragEvent{Type: Drop, Transfer: s.transfer})
		s.transfer.DropEffect = s.transfer.EffectAllowed
		res.Dropped = true
		res.Target = s.hovered
	} else if s.hovered != nil {
		s.leaveHovered()
	}

	s.end()
	return res
}

// Cancel abandons the gesture without dropping
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	if s.hovered != nil {
		s.leaveHovered()
	}
	s.end()
}

func (s *Session) leaveHovered() {
	s.hovered.DragLeaveHandler(&DragEvent{Type: DragLeave, Transfer: s.transfer})
	s.hovered = nil
	s.accepted = false
}

func (s *Session) end() {
	if s.transfer.DropEffect == "" {
		s.transfer.DropEffect = EffectNone
	}
	s.source.DragEndHandler(&DragEvent{Type: DragEnd, Transfer: s.transfer})

	s.source = nil
	s.transfer = nil
	s.hovered = nil
	s.accepted = false
	s.active = false
}
