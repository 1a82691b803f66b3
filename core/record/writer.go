package record

import (
	"context"
	"sync"
	"time"

	"github.com/trezcool/gpatracker/core"
)

// writeOp is one full-state write. A clear op empties the slot.
type writeOp struct {
	seq   uint64
	blob  []byte
	clear bool
}

// writer persists the latest submitted state in the background.
// Ops submitted while a write is running are coalesced: only the newest one is written.
type writer struct {
	slot    core.Slot
	log     core.Logger
	timeout time.Duration

	mu      sync.Mutex
	pending *writeOp
	queued  uint64 // seq of the last submitted op
	done    uint64 // seq of the last written (or skipped) op
	err     error  // result of the last write
	changed chan struct{}

	wake    chan struct{}
	quit    chan struct{}
	stopped chan struct{}
}

func newWriter(slot core.Slot, log core.Logger, timeout time.Duration) *writer {
	w := &writer{
		slot:    slot,
		log:     log,
		timeout: timeout,
		changed: make(chan struct{}),
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *writer) submit(op writeOp) {
	w.mu.Lock()
	w.queued++
	op.seq = w.queued
	w.pending = &op
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *writer) run() {
	defer close(w.stopped)
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.quit:
			w.drain()
			return
		}
	}
}

func (w *writer) drain() {
	for {
		w.mu.Lock()
		op := w.pending
		w.pending = nil
		w.mu.Unlock()
		if op == nil {
			return
		}

		err := w.write(op)

		w.mu.Lock()
		w.done = op.seq
		w.err = err
		close(w.changed)
		w.changed = make(chan struct{})
		w.mu.Unlock()
	}
}

func (w *writer) write(op *writeOp) error {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	var err error
	if op.clear {
		err = w.slot.Clear(ctx)
	} else {
		err = w.slot.Save(ctx, op.blob)
	}
	if err != nil {
		w.log.Warn("record: saving to storage failed; changes are kept in memory", err)
	}
	return err
}

// flush waits until every op submitted so far is written and returns the last write error.
func (w *writer) flush(ctx context.Context) error {
	w.mu.Lock()
	target := w.queued
	for w.done < target {
		changed := w.changed
		w.mu.Unlock()
		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
		w.mu.Lock()
	}
	err := w.err
	w.mu.Unlock()
	return err
}

func (w *writer) lastErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// stop writes the pending op then ends the background goroutine.
func (w *writer) stop(ctx context.Context) error {
	close(w.quit)
	select {
	case <-w.stopped:
		return w.lastErr()
	case <-ctx.Done():
		return ctx.Err()
	}
}
