// Package registry provides the owning container for type-erased handles:
// wrappers of unrelated concrete types live here as plain Invokers, keyed
// for lookup and partitioning, and get invoked uniformly, either
// sequentially or over a bounded worker pool.
package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/fn_base_go/functors"
	"github.com/on-the-ground/fn_base_go/functors/internal/dispatch"
	"github.com/on-the-ground/fn_base_go/shared/helper"
)

// ErrNoSuchHandle is returned by lookups for keys nothing was registered
// under.
var ErrNoSuchHandle = fmt.Errorf("no handle registered under key")

var _ dispatch.Keyed = entry{}

type entry struct {
	key    string
	handle functors.Invoker
}

func (e entry) PartitionKey() string { return e.key }

// Registry owns an ordered collection of Invoker handles.
//
// IMPORTANT:
// This registry is **intentionally NOT thread-safe**.
//
// It is designed with the assumption that each registry instance will be
// built up and invoked from a **single goroutine** and **single execution
// scope**.
//
// ➤ We deliberately avoided synchronization (mutexes, atomic ops, etc.)
//
//	to keep the registry lightweight and avoid accidental cross-goroutine sharing.
//
// ➤ Sharing this registry across multiple goroutines
//
//	will lead to **undefined behavior**, including data races and lost handles.
//
// This is a **conscious design choice** to reinforce proper scoping and ownership.
// InvokeAllPartitioned owns its worker goroutines internally and joins them
// before returning; the registry itself may still only be driven by one
// goroutine at a time.
type Registry struct {
	RegistryId string
	entries    []entry
	logger     *zap.Logger
}

// New returns an empty registry.
func New() *Registry {
	return NewLogged(nil)
}

// NewLogged is New with a logger attached for the failure policy of
// InvokeAllPartitioned. A nil logger falls back to the no-op logger.
func NewLogged(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		RegistryId: uuid.New().String(),
		entries:    nil,
		logger:     logger,
	}
	r.logger.Sugar().Debugf("created registry: registryId: %v", r.RegistryId)
	return r
}

// Add appends handle under a generated UUID key and returns that key.
// Panics if handle is nil.
func (r *Registry) Add(handle functors.Invoker) string {
	key := uuid.New().String()
	r.AddKeyed(key, handle)
	return key
}

// AddKeyed appends handle under the caller's key. The key doubles as the
// partition key for InvokeAllPartitioned. Duplicate keys are allowed;
// lookups return the first match. Panics if handle is nil.
func (r *Registry) AddKeyed(key string, handle functors.Invoker) {
	if handle == nil {
		panic("registry.AddKeyed: nil handle")
	}
	r.entries = append(r.entries, entry{key: key, handle: handle})
}

// Len returns the number of registered handles.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Keys returns every key in insertion order, duplicates included.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.key
	}
	return keys
}

// HandleOf returns the first handle registered under key.
func (r *Registry) HandleOf(key string) (functors.Invoker, bool) {
	for _, e := range r.entries {
		if e.key == key {
			return e.handle, true
		}
	}
	return nil, false
}

// HandleAs returns the first handle under key asserted back to its concrete
// wrapper type T. Returns an error wrapping ErrNoSuchHandle when the key is
// unknown, or a type error when the handle is not a T.
func HandleAs[T any](r *Registry, key string) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		handle, ok := r.HandleOf(key)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNoSuchHandle, key)
		}
		return handle, nil
	})
}

// InvokeAll invokes every handle sequentially, in insertion order, on the
// caller's goroutine. Panics propagate unchanged (the wrappers' own
// contract).
func (r *Registry) InvokeAll() {
	for _, e := range r.entries {
		e.handle.Invoke()
	}
}

// InvokeAllPartitioned invokes every handle on a bounded worker pool and
// blocks until all of them ran or ctx is done. Handles sharing a key hash
// to the same worker and run in insertion order; order across keys is
// unspecified. A panicking handle is recovered and logged, and the rest
// still run. The pool lives only for the duration of the call; on ctx
// cancellation the remaining handles are not invoked and ctx.Err() is
// returned.
func (r *Registry) InvokeAllPartitioned(ctx context.Context, config Config) error {
	if len(r.entries) == 0 {
		return nil
	}
	config = NewConfig(config.BufferSize, config.NumWorkers)
	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	doneCh := make(chan struct{}, len(r.entries))
	handleFn := func(_ context.Context, msg entry) {
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("panic in registered handle",
					zap.String("registryId", r.RegistryId),
					zap.String("key", msg.key),
					zap.Any("error", rec),
				)
			}
			doneCh <- struct{}{}
		}()
		msg.handle.Invoke()
	}

	var dispatcher dispatch.Dispatcher[entry]
	if config.NumWorkers == 1 {
		dispatcher = dispatch.NewSingleQueue(ctx, config.BufferSize, handleFn)
	} else {
		dispatcher = dispatch.NewPartitionedQueue(ctx, config.NumWorkers, config.BufferSize, handleFn)
	}

	if err := r.enqueue(ctx, dispatcher); err != nil {
		return err
	}
	for range r.entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-doneCh:
		}
	}
	r.logger.Debug("registry invoked",
		zap.String("registryId", r.RegistryId),
		zap.Int("numHandles", len(r.entries)),
	)
	return nil
}

func (r *Registry) enqueue(ctx context.Context, dispatcher dispatch.Dispatcher[entry]) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			// the workers close their channels once ctx is done
			r.logger.Error("panic while sending to closed worker channel",
				zap.String("registryId", r.RegistryId),
				zap.Any("error", rec),
			)
			err = ctx.Err()
		}
	}()

	for _, e := range r.entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case dispatcher.ChannelOf(e) <- e:
		}
	}
	return nil
}
