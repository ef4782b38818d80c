package dispatch_test

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/on-the-ground/fn_base_go/functors/internal/dispatch"
)

// routedMessage implements Keyed for partitioned dispatching.
type routedMessage struct {
	id    int
	group string
}

func (m routedMessage) PartitionKey() string {
	return m.group
}

// Test that the single queue hands every message to the handler.
func TestSingleQueue_DispatchesToHandler(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu     sync.Mutex
		seen   []int
		joined sync.WaitGroup
	)
	joined.Add(2)

	dispatcher := dispatch.NewSingleQueue(ctx, 10, func(_ context.Context, msg int) {
		defer joined.Done()
		mu.Lock()
		seen = append(seen, msg)
		mu.Unlock()
	})

	ch := dispatcher.ChannelOf(0)
	ch <- 1
	ch <- 2
	joined.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || !slices.Contains(seen, 1) || !slices.Contains(seen, 2) {
		t.Errorf("handler was not called correctly: %v", seen)
	}
}

// Test that messages with the same key end up on the same worker and their
// per-group counts are complete.
func TestPartitionedQueue_RoutesByKey(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu     sync.Mutex
		byKey  = make(map[string][]int)
		joined sync.WaitGroup
	)
	joined.Add(4)

	dispatcher := dispatch.NewPartitionedQueue(ctx, 10, 10, func(_ context.Context, msg routedMessage) {
		defer joined.Done()
		mu.Lock()
		byKey[msg.group] = append(byKey[msg.group], msg.id)
		mu.Unlock()
	})

	for _, msg := range []routedMessage{
		{1, "groupA"},
		{2, "groupA"},
		{3, "groupB"},
		{4, "groupB"},
	} {
		dispatcher.ChannelOf(msg) <- msg
	}
	joined.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(byKey["groupA"]) != 2 || len(byKey["groupB"]) != 2 {
		t.Errorf("expected each group to handle 2 messages: got %v", byKey)
	}
}

// Test that messages sharing a partition key are processed in send order.
func TestPartitionedQueue_OrderIsPreservedForSameKey(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu        sync.Mutex
		processed []int
		joined    sync.WaitGroup
	)
	joined.Add(5)

	dispatcher := dispatch.NewPartitionedQueue(ctx, 2, 10, func(_ context.Context, msg routedMessage) {
		defer joined.Done()
		mu.Lock()
		processed = append(processed, msg.id)
		mu.Unlock()
	})

	for i := 0; i < 5; i++ {
		msg := routedMessage{id: i, group: "sameKey"}
		dispatcher.ChannelOf(msg) <- msg
	}
	joined.Wait()

	mu.Lock()
	defer mu.Unlock()
	if !slices.Equal(processed, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("expected order [0 1 2 3 4] but got %v", processed)
	}
}

// Test that the worker stops after context cancelation and the channel is
// closed, so a late send panics.
func TestSingleQueue_ShutdownOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	handled := make(chan int, 1)
	dispatcher := dispatch.NewSingleQueue(ctx, 1, func(_ context.Context, msg int) {
		handled <- msg
	})

	dispatcher.ChannelOf(0) <- 0
	select {
	case <-handled:
		// expected
	case <-time.After(time.Second):
		t.Fatal("handler was not called before context cancel")
	}

	cancel()
	time.Sleep(100 * time.Millisecond) // give the worker time to exit

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when sending to closed channel, but no panic occurred")
		}
	}()
	dispatcher.ChannelOf(0) <- 0 // should panic
}

// gate blocks the handler so buffer behavior can be observed.
type gate struct {
	entered chan struct{}
	release chan struct{}
}

func (g *gate) handle(_ context.Context, _ int) {
	g.entered <- struct{}{}
	<-g.release
}

// Test that a full buffer makes the next send block until the worker drains.
func TestSingleQueue_BlocksWhenBufferIsFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &gate{
		entered: make(chan struct{}, 3),
		release: make(chan struct{}),
	}
	dispatcher := dispatch.NewSingleQueue(ctx, 1, g.handle)
	targetCh := dispatcher.ChannelOf(0)

	go func() {
		targetCh <- 1 // the worker consumes this and blocks in the handler
	}()
	select {
	case <-g.entered:
	case <-time.After(time.Second):
		t.Fatal("handler did not start")
	}

	targetCh <- 2 // fills the buffer

	blocked := make(chan struct{})
	go func() {
		targetCh <- 3 // must block until the gate opens
		close(blocked)
	}()

	select {
	case <-blocked:
		t.Fatal("expected third message to block, but it didn't")
	case <-time.After(200 * time.Millisecond):
		// expected
	}

	close(g.release)

	select {
	case <-blocked:
		// good
	case <-time.After(time.Second):
		t.Fatal("third message never unblocked")
	}
}
