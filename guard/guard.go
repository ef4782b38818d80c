// Package guard provides scope-bound cleanup: a Guard runs one action
// exactly once when control leaves the owning scope, on every exit path,
// and a Stack closes a whole pile of cleanup actions as one unit.
package guard

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Guard owns a single zero-argument action and runs it exactly once at the
// end of the owning scope. Arm it right after acquiring the resource it
// covers and defer Run:
//
//	g := guard.New(func() { file.Close() })
//	defer g.Run()
//
// Run fires on normal returns and on panic unwinding alike. The binding is
// fixed for the guard's lifetime: there is no cancel operation, only
// Transfer, which moves the action to a new guard and disarms this one.
//
// IMPORTANT:
// This guard is **intentionally NOT thread-safe**.
//
// It is designed with the assumption that each guard instance will be used
// only within a **single goroutine** and **single execution scope**.
//
// ➤ We deliberately avoided synchronization (mutexes, atomic ops, etc.)
//
//	to keep the guard lightweight and avoid accidental cross-goroutine sharing.
//
// ➤ Sharing this guard across multiple goroutines
//
//	will lead to **undefined behavior**, including data races and missed runs.
//
// This is a **conscious design choice** to reinforce proper scoping and ownership.
// If you require shared access, explicitly manage synchronization outside this scope.
//
// The zero Guard is unusable; construct with New or NewLogged.
type Guard struct {
	GuardId string
	action  func()
	logger  *zap.Logger
	done    bool
}

// New binds action to a fresh guard. The action runs through Run and only
// through Run, which the owner is expected to defer. Panics if action is nil.
func New(action func()) *Guard {
	if action == nil {
		panic("guard.New: nil action")
	}
	return NewLogged(action, nil)
}

// NewLogged is New with a logger attached for the failure policy: if the
// bound action panics during Run, the panic is reported through logger.
// A nil logger falls back to the no-op logger.
func NewLogged(action func(), logger *zap.Logger) *Guard {
	if action == nil {
		panic("guard.NewLogged: nil action")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{
		GuardId: uuid.New().String(),
		action:  action,
		logger:  logger,
		done:    false,
	}
}

// Run invokes the bound action and releases it; repeated calls are no-ops.
// Defer it at the top of the scope so the action also fires when a panic
// unwinds through.
//
// The action is required not to panic. If it panics anyway, the fixed
// policy applies: the panic is recovered, logged at error level with the
// guard id, and not re-raised. The action never gets a second attempt.
func (g *Guard) Run() {
	if g.done {
		return
	}
	g.done = true
	action := g.action
	g.action = nil

	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("panic in guarded action",
				zap.String("guardId", g.GuardId),
				zap.Any("error", r),
			)
		}
	}()
	action()
	g.logger.Debug("guard done", zap.String("guardId", g.GuardId))
}

// Transfer moves the action to a new guard and permanently disarms the
// receiver: after the call only the returned guard can run the action.
// The guard id travels with the action. Transferring a guard that already
// ran, or was already transferred, yields an inert guard.
func (g *Guard) Transfer() *Guard {
	next := &Guard{
		GuardId: g.GuardId,
		action:  g.action,
		logger:  g.logger,
		done:    g.done,
	}
	g.done = true
	g.action = nil
	return next
}

// Done reports whether the action is gone from this guard: already run, or
// transferred away.
func (g *Guard) Done() bool {
	return g.done
}
