package store

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestThrottleCoalesces(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		th.Enqueue(Event{Type: EventKeyChanged, Key: "tasks_u1"}, send)
	}

	select {
	case ev := <-got:
		if ev.Key != "tasks_u1" {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no event flushed")
	}
	select {
	case ev := <-got:
		t.Fatalf("burst was not coalesced, extra %+v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestThrottleStopWaitsForFlush(t *testing.T) {
	th := newEventThrottle(time.Millisecond)

	entered := make(chan struct{})
	release := make(chan struct{})
	var stopped, late atomic.Bool
	send := func(Event) {
		if stopped.Load() {
			late.Store(true)
		}
		select {
		case <-entered:
		default:
			close(entered)
		}
		<-release
	}

	th.Enqueue(Event{Type: EventInvalidated}, send)
	<-entered

	done := make(chan struct{})
	go func() {
		th.Stop()
		stopped.Store(true)
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("Stop returned while a flush was still sending")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)
	<-done

	th.Enqueue(Event{Type: EventInvalidated}, send)
	time.Sleep(20 * time.Millisecond)
	if late.Load() {
		t.Fatal("send called after Stop returned")
	}
}

func TestThrottleStopCancelsPending(t *testing.T) {
	th := newEventThrottle(50 * time.Millisecond)
	var calls atomic.Int32
	th.Enqueue(Event{Type: EventInvalidated}, func(Event) { calls.Add(1) })
	th.Stop()
	time.Sleep(100 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Fatalf("pending flush ran %d times after Stop", n)
	}
}
