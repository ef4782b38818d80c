package guard

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Stack collects cleanup actions for a scope that acquires resources one by
// one, and closes them as a single unit, last pushed first. It satisfies
// io.Closer so the whole scope can be handed to anything expecting one
// closer.
//
// safe only in single goroutine – NEVER share across goroutines
//
// The zero Stack is unusable; construct with NewStack or NewLoggedStack.
type Stack struct {
	StackId string
	entries []func() error
	logger  *zap.Logger
	closed  bool
}

var _ io.Closer = (*Stack)(nil)

// NewStack returns an empty cleanup stack.
func NewStack() *Stack {
	return NewLoggedStack(nil)
}

// NewLoggedStack is NewStack with a logger attached for the failure policy.
// A nil logger falls back to the no-op logger.
func NewLoggedStack(logger *zap.Logger) *Stack {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stack{
		StackId: uuid.New().String(),
		entries: nil,
		logger:  logger,
		closed:  false,
	}
}

// Push binds an infallible cleanup action. Panics if action is nil or the
// stack is already closed.
func (s *Stack) Push(action func()) {
	if action == nil {
		panic("guard.Push: nil action")
	}
	s.push(func() error {
		action()
		return nil
	})
}

// PushErr binds a fallible cleanup action; its error surfaces in Close's
// combined result. Panics if action is nil or the stack is already closed.
func (s *Stack) PushErr(action func() error) {
	if action == nil {
		panic("guard.PushErr: nil action")
	}
	s.push(action)
}

func (s *Stack) push(entry func() error) {
	if s.closed {
		panic("guard: push on closed stack")
	}
	s.entries = append(s.entries, entry)
}

// Len returns the number of pending cleanup actions.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Close runs every pushed action exactly once, in reverse push order, and
// returns their non-nil errors joined into one. A panicking action follows
// the guard policy (recovered, logged with the stack id, never re-raised)
// and the remaining actions still run. Closing an already-closed stack is a
// no-op returning nil.
func (s *Stack) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	entries := s.entries
	s.entries = nil

	var err error
	for i := len(entries) - 1; i >= 0; i-- {
		err = multierr.Append(err, s.runEntry(entries[i]))
	}
	s.logger.Debug("stack closed",
		zap.String("stackId", s.StackId),
		zap.Int("numActions", len(entries)),
	)
	return err
}

func (s *Stack) runEntry(entry func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic in cleanup action",
				zap.String("stackId", s.StackId),
				zap.Any("error", r),
			)
		}
	}()
	return entry()
}
