package menu

// Frame is one level of the list panel: a titled item collection with its own
// cursor and filter so returning to a parent restores where the user was.
type Frame struct {
	Title  string
	Items  []Item
	Cursor int
	Filter string
}

// NewFrame builds a frame with the cursor on the first selectable item.
func NewFrame(title string, items []Item) *Frame {
	f := &Frame{Title: title, Items: items}
	f.Cursor = f.firstSelectable()
	return f
}

func (f *Frame) firstSelectable() int {
	visible := f.Visible()
	for i, entry := range visible {
		if !entry.Item.Disabled {
			return i
		}
	}
	return 0
}

// BackEntry returns the visible index of the frame's back item, if any.
func (f *Frame) BackEntry() (int, bool) {
	for i, entry := range f.Visible() {
		if entry.Item.Kind == Back {
			return i, true
		}
	}
	return 0, false
}

// Current returns the item under the cursor.
func (f *Frame) Current() (Indexed, bool) {
	visible := f.Visible()
	if len(visible) == 0 || f.Cursor < 0 || f.Cursor >= len(visible) {
		return Indexed{}, false
	}
	return visible[f.Cursor], true
}

// MoveCursor shifts the cursor by delta, skipping disabled items. Returns
// true when the cursor moved.
func (f *Frame) MoveCursor(delta int) bool {
	visible := f.Visible()
	if len(visible) == 0 || delta == 0 {
		return false
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	cursor := f.Cursor
	for moved := 0; moved < delta; moved++ {
		next := cursor + step
		for next >= 0 && next < len(visible) && visible[next].Item.Disabled {
			next += step
		}
		if next < 0 || next >= len(visible) {
			break
		}
		cursor = next
	}
	if cursor == f.Cursor {
		return false
	}
	f.Cursor = cursor
	return true
}

// Stack is the submenu navigation stack. The bottom frame is the root list.
type Stack struct {
	frames []*Frame
}

// Depth returns the number of frames.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Current returns the top frame, or nil when empty.
func (s *Stack) Current() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Reset replaces the whole stack with a single root frame.
func (s *Stack) Reset(frame *Frame) {
	s.frames = []*Frame{frame}
}

// Push adds a submenu frame on top.
func (s *Stack) Push(frame *Frame) {
	s.frames = append(s.frames, frame)
}

// Pop removes the top frame and returns the newly exposed frame. Popping the
// root is refused.
func (s *Stack) Pop() (*Frame, bool) {
	if len(s.frames) <= 1 {
		return s.Current(), false
	}
	s.frames = s.frames[:len(s.frames)-1]
	return s.Current(), true
}

// Replace swaps the top frame in place, used when the host re-renders the
// current level.
func (s *Stack) Replace(frame *Frame) {
	if len(s.frames) == 0 {
		s.frames = []*Frame{frame}
		return
	}
	s.frames[len(s.frames)-1] = frame
}

// Clear drops every frame.
func (s *Stack) Clear() {
	s.frames = nil
}
