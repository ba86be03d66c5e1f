// Package state provides the handoff queue between the log producer and the UI.
//
// # Overview
//
// The producer goroutine tails the log file and parses lines; the render loop
// runs inside Bubble Tea's update goroutine. Store is the only value the two
// share. It carries parsed samples from one side to the other along with a
// few counters for the status bar.
//
// # Architecture
//
//	Producer (logtail + parser):    Consumer (ui.Model tick):
//	┌──────────────────┐           ┌──────────────────┐
//	│ Tailer.Follow()  │           │ tickMsg          │
//	│      ↓           │           │      ↓           │
//	│ ParseLine()      │           │ store.Drain()    │
//	│      ↓           │  (mutex)  │      ↓           │
//	│ store.Push()     │──────────→│ buffer.Append()  │
//	│ store.Reject()   │           │ buffer.Window()  │
//	└──────────────────┘           └──────────────────┘
//
// # Queue Semantics
//
//   - Push appends to an unbounded slice and never blocks the producer
//   - Drain swaps the slice out and returns it; an empty queue returns nil
//     immediately so a render tick is never held up waiting for data
//   - Samples come out in exactly the order they went in, which is file order
//     because there is a single producer
//
// Readings arrive every few seconds and the UI drains every few seconds, so
// the queue stays tiny. There is no backpressure.
//
// # Counters
//
// Stats reports totals (samples pushed, lines rejected), how many samples are
// waiting, when the last push happened and the error that stopped the
// producer, if any.
//
// # Testing Considerations
//
// The zero Store is ready to use:
//
//	var store state.Store
//	store.Push(sample)
//	got := store.Drain()
package state
