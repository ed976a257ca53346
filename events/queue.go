package events

import (
	"sync"

	"code.hybscloud.com/lfq"

	"github.com/vim-fall/fall.vim/config"
)

// EventQueue is the picker engine's single global event FIFO (spec §4.1).
// Any stage or the input driver may Dispatch concurrently; exactly one
// consumer (the scheduler, on its periodic tick) calls Drain.
//
// Backed by lfq's FAA-based MPSC ring instead of the teacher's hand-rolled
// CAS/published-flag buffer (events/queue.go originally), since the
// capacity and overwrite-on-overflow semantics are the same and the
// library is already production-hardened for exactly this access pattern.
// lfq.MPSC.Enqueue returns ErrWouldBlock instead of silently overwriting,
// so Dispatch recovers the teacher's overwrite-oldest behavior itself: on
// a full queue it dequeues one slot to make room and retries.
type EventQueue struct {
	q *lfq.MPSC[Event]

	// drainMu serializes Drain against itself; Dispatch is already safe
	// for concurrent callers via the underlying MPSC.
	drainMu sync.Mutex
}

// NewEventQueue creates a queue with the configured capacity.
func NewEventQueue() *EventQueue {
	return &EventQueue{q: lfq.NewMPSC[Event](config.EventQueueCapacity)}
}

// Dispatch enqueues ev, evicting the oldest unread event if the ring is
// full. Safe for any number of concurrent producers.
func (eq *EventQueue) Dispatch(ev Event) {
	for {
		if err := eq.q.Enqueue(&ev); err == nil {
			return
		}
		// Full: drop the oldest to make room. A racing Drain may win the
		// dequeue first, in which case Enqueue simply succeeds next loop.
		eq.q.Dequeue()
	}
}

// Drain pops every event currently enqueued into a local slice, then
// invokes consume once per event in FIFO order. Events Dispatched while
// consume is running are left for the next Drain call, matching the
// scheduler's per-tick batching contract (spec §4.1, §4.10).
func (eq *EventQueue) Drain(consume func(Event)) {
	eq.drainMu.Lock()
	defer eq.drainMu.Unlock()

	var batch []Event
	for {
		ev, err := eq.q.Dequeue()
		if err != nil {
			break
		}
		batch = append(batch, ev)
	}
	for _, ev := range batch {
		consume(ev)
	}
}

// Cap returns the queue's rounded-up capacity.
func (eq *EventQueue) Cap() int {
	return eq.q.Cap()
}
