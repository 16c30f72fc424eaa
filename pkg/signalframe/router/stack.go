package router

// noFrame terminates a chain of frame links.
const noFrame = -1

// frame is one slot in the stack arena. prev is the index of the frame
// beneath, or noFrame at the bottom.
type frame struct {
	view *View
	prev int
	live bool
}

// Stack holds the open views. Frames live in an arena and link to the frame
// beneath by index, so a view that is closed out of band never leaves a
// dangling reference behind. The same view may occupy more than one frame.
type Stack struct {
	frames []frame
	free   []int
	top    int
	count  int
}

// NewStack creates a new empty view stack.
func NewStack() *Stack {
	return &Stack{
		frames: make([]frame, 0, 8),
		top:    noFrame,
	}
}

// push links v above the current top and returns its frame index.
func (s *Stack) push(v *View) int {
	f := frame{view: v, prev: s.top, live: true}

	var idx int
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
		s.frames[idx] = f
	} else {
		idx = len(s.frames)
		s.frames = append(s.frames, f)
	}

	s.top = idx
	s.count++
	return idx
}

// pop unlinks the top frame and returns its view, or nil when empty.
func (s *Stack) pop() *View {
	if s.top == noFrame {
		return nil
	}
	idx := s.top
	v := s.frames[idx].view
	s.top = s.frames[idx].prev
	s.release(idx)
	s.count--
	return v
}

// unlink removes the frame beneath above, splicing above to the frame below
// the removed one, and returns the removed view.
func (s *Stack) unlink(above int) *View {
	idx := s.frames[above].prev
	v := s.frames[idx].view
	s.frames[above].prev = s.frames[idx].prev
	s.release(idx)
	s.count--
	return v
}

func (s *Stack) release(idx int) {
	s.frames[idx] = frame{prev: noFrame}
	s.free = append(s.free, idx)
}

// valid reports whether idx names a live frame.
func (s *Stack) valid(idx int) bool {
	return idx >= 0 && idx < len(s.frames) && s.frames[idx].live
}

// reset drops every frame without notifying any view.
func (s *Stack) reset() {
	s.frames = s.frames[:0]
	s.free = s.free[:0]
	s.top = noFrame
	s.count = 0
}

// Top returns the current top view, or nil if the stack is empty.
func (s *Stack) Top() *View {
	if !s.valid(s.top) {
		return nil
	}
	return s.frames[s.top].view
}

// IsEmpty returns true if the stack has no views.
func (s *Stack) IsEmpty() bool {
	return s.top == noFrame
}

// Len returns the number of open frames.
func (s *Stack) Len() int {
	return s.count
}

// Views returns the open views from top to bottom. The walk is bounded by
// the frame count so a corrupt chain cannot loop forever.
func (s *Stack) Views() []*View {
	views := make([]*View, 0, s.count)
	for idx := s.top; s.valid(idx) && len(views) < s.count; idx = s.frames[idx].prev {
		views = append(views, s.frames[idx].view)
	}
	return views
}

// Contains reports whether v occupies any frame.
func (s *Stack) Contains(v *View) bool {
	for _, cur := range s.Views() {
		if cur == v {
			return true
		}
	}
	return false
}
