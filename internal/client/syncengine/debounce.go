package syncengine

import (
	"context"
)

// The debounce timer and generation are only touched on the worker.

// schedule (re)starts the session-wide timer with id as the push target.
func (e *Engine) schedule(id string) {
	e.stopTimer()
	e.gen++
	gen := e.gen
	e.setPending(id)

	e.timer = e.clock.AfterFunc(e.debounce, func() {
		e.enqueue(func(ctx context.Context) error {
			return e.fire(ctx, gen)
		})
	})
}

// cancelDebounce drops any scheduled push.
func (e *Engine) cancelDebounce() {
	e.stopTimer()
	e.gen++
	e.setPending("")
}

func (e *Engine) stopTimer() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// fire pushes the pending target unless the timer was replaced or canceled
// after it expired.
func (e *Engine) fire(ctx context.Context, gen uint64) error {
	id := e.Pending()
	if gen != e.gen || id == "" {
		return nil
	}
	e.timer = nil
	e.setPending("")

	uid, err := e.user(ctx)
	if err != nil {
		return nil
	}

	if err := e.push(ctx, uid, id, false); err != nil {
		e.logger.Warn(ctx, "debounced push failed", "project_id", id, "error", err)
	}
	return nil
}
