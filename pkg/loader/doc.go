// Package loader loads a bundle of artifacts in the background and hands it to a
// single consumer goroutine.
//
// # Slot State Machine
//
//	┌──────┐ BeginLoad ┌─────────┐ task done ┌────────┐ Finalize ┌───────────┐
//	│ Idle │──────────►│ Loading │──────────►│ Loaded │─────────►│ Finalized │
//	└──────┘           └─────────┘           └────────┘          └───────────┘
//	   ▲                    │ timeout             │ Discard            │
//	   └────────────────────┴─────────────────────┘                    │
//	   ▲                         BeginLoad (next cycle)                │
//	   └───────────────────────────────────────────────────────────────┘
//
// All transitions are compare-and-swap on one atomic state. BeginLoad only
// succeeds from Idle or Finalized, so a second load is rejected while one is
// in flight and while a loaded result waits for Finalize. Rejection is a
// false return, not an error.
//
// # Buffer
//
// The load task runs every Artifact concurrently and writes each result into
// a buffer under a mutex as soon as it is available. A failed artifact does
// not hold back the others. The last action of the task moves the slot to
// Loaded. Finalize reads the buffer under the same mutex, so it observes the
// complete write regardless of how the state flag was read.
//
// # Finalize
//
// Finalize is called from the consumer goroutine, typically once per tick:
//
//	if req, ok := l.TakeRequest(); ok {
//	    l.BeginLoad(req.Key)
//	}
//	if l.IsReadyToFinalize() {
//	    l.Finalize(ctx)
//	    snap := l.Live()
//	}
//
// Valid artifacts are moved into the live Snapshot. A failed artifact gets its
// Fallback, retried with exponential backoff, or keeps its previous live value
// when there is no Fallback or the Fallback fails too.
//
// # Timeout
//
// WithTimeout bounds a load. A slot still Loading after the timeout returns
// to Idle and its generation advances; the abandoned task keeps running but
// its buffer writes and completion are ignored.
//
// # Requests
//
// RequestNext and RequestPrev record a single outstanding key; a later call
// overwrites an earlier one. The consumer takes it with TakeRequest.
package loader
