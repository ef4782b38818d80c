package dispatch

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// --- common interface ---

// Dispatcher routes each message to the channel of the worker that owns it.
type Dispatcher[T any] interface {
	ChannelOf(msg T) chan T
}

// Keyed is implemented by messages that pin their processing to a partition
// key: messages with equal keys land on the same worker, in send order.
type Keyed interface {
	PartitionKey() string
}

// --- single queue ---

var _ Dispatcher[any] = singleQueue[any]{}

type singleQueue[T any] struct {
	msgCh chan T
}

func (q singleQueue[T]) ChannelOf(_ T) chan T {
	return q.msgCh
}

// NewSingleQueue starts one worker goroutine draining one buffered channel.
// The worker runs handleFn per message until ctx is done, then closes the
// channel; senders are expected to watch ctx themselves.
func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) Dispatcher[T] {
	msgCh := make(chan T, bufferSize)
	ready := make(chan struct{})

	go func(ch chan T) {
		defer close(ch)
		close(ready)
		for {
			select {
			case msg := <-ch:
				handleFn(ctx, msg)
			case <-ctx.Done():
				return
			}
		}
	}(msgCh)

	<-ready

	return singleQueue[T]{msgCh: msgCh}
}

// --- partitioned queue ---

var _ Dispatcher[Keyed] = partitionedQueue[Keyed]{}

type partitionedQueue[T Keyed] struct {
	msgChs []chan T
}

func (pq partitionedQueue[T]) ChannelOf(msg T) chan T {
	idx := indexByHash(msg, len(pq.msgChs))
	return pq.msgChs[idx]
}

// NewPartitionedQueue starts numWorkers goroutines, each draining its own
// buffered channel. ChannelOf hashes the message's partition key so equal
// keys always reach the same worker.
func NewPartitionedQueue[T Keyed](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) Dispatcher[T] {
	channels := make([]chan T, numWorkers)
	ready := sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		ready.Add(1)
		ch := make(chan T, bufferSize)
		go func(ch chan T) {
			defer close(ch)
			ready.Done()
			for {
				select {
				case msg := <-ch:
					handleFn(ctx, msg)
				case <-ctx.Done():
					return
				}
			}
		}(ch)
		channels[i] = ch
	}
	ready.Wait()
	return partitionedQueue[T]{msgChs: channels}
}

func hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// indexByHash maps equal partition keys to the same channel index; the
// modulo stays on uint64 so the index is always in range.
func indexByHash(msg Keyed, numChs int) int {
	switch numChs {
	case 0:
		panic("dispatch: number of channels cannot be 0")
	case 1:
		return 0
	default:
		return int(hash(msg.PartitionKey()) % uint64(numChs))
	}
}
