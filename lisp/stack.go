package lisp

import (
	"fmt"
	"io"
)

// DefaultMaxStackHeight bounds the depth of lisp-level recursion so that a
// runaway computation reports a stack-overflow error instead of exhausting
// the native call stack.
const DefaultMaxStackHeight = 10000

// CallStack is a function call stack.
type CallStack struct {
	Frames    []CallFrame
	MaxHeight int
}

// CallFrame is one frame in the CallStack.
type CallFrame struct {
	FID  string
	Name string
}

// Copy creates a copy of the current stack so that it can be attached to a
// runtime error.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{Frames: frames, MaxHeight: s.MaxHeight}
}

// Top returns the CallFrame at the top of the stack or nil if none exists.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Push pushes a new stack frame with the given FID onto s.  An error is
// returned when pushing would exceed the stack's height limit.
func (s *CallStack) Push(fid, name string) error {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return fmt.Errorf("maximum stack height reached (%d frames)", s.MaxHeight)
	}
	s.Frames = append(s.Frames, CallFrame{FID: fid, Name: name})
	return nil
}

// Pop removes the top CallFrame from the stack and returns it.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// DebugPrint prints s.
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", len(s.Frames))
	if err != nil {
		return n, err
	}
	for i := len(s.Frames) - 1; i >= 0; i-- {
		f := s.Frames[i]
		name := f.FID
		if f.Name != "" {
			name = f.Name
		}
		_n, err := fmt.Fprintf(w, "  height %d: %s\n", i, name)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
