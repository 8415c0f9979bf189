package parse

import (
	"github.com/ef-ds/deque"
)

// State represents the remaining tokens of a single scan. Tokens are consumed front to back;
// a consumed token is never revisited.
type State interface {
	Pos() int                  // Index of the current token in the original argument list, -1 before the first Advance
	Advance() bool             // Move to the next token, returning false when the input is exhausted
	CurrentArg() string        // Get the current token
	Peek() (string, bool)      // Peek at the next token without consuming it
	TakeValue() (string, bool) // Consume the next token as the value of the current one
	Remaining() int            // Number of tokens not yet consumed
	Len() int                  // Length of the original argument list
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos     int
	total   int
	current string
	pending *deque.Deque
}

// NewState creates a new State instance with the given argument list
func NewState(args []string) State {
	pending := deque.New()
	for _, arg := range args {
		pending.PushBack(arg)
	}

	return &DefaultState{
		pos:     -1,
		total:   len(args),
		pending: pending,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Advance moves to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	v, ok := s.pending.PopFront()
	if !ok {
		s.current = ""
		return false
	}
	s.pos++
	s.current = v.(string)

	return true
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	return s.current
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() (string, bool) {
	v, ok := s.pending.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// TakeValue consumes the next argument. The position moves past it so that the
// following Advance lands on the token after the value.
func (s *DefaultState) TakeValue() (string, bool) {
	v, ok := s.pending.PopFront()
	if !ok {
		return "", false
	}
	s.pos++

	return v.(string), true
}

// Remaining returns the number of arguments not yet consumed
func (s *DefaultState) Remaining() int {
	return s.pending.Len()
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return s.total
}
