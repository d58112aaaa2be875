// Package asyncx runs blocking work off the UI goroutine and brings the
// results back to it.
//
// Go starts one goroutine per task and returns a Future. Then delivers the
// settled result to a Dispatcher, whose queue is drained by exactly one
// goroutine (the REPL loop), so callbacks never race with each other or with
// the front-end state they touch.
package asyncx

import (
	"context"
	"fmt"
)

// Future is the eventual result of one task.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn in a new goroutine. A panic in fn settles the future with an
// error instead of crashing the process.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("task panicked: %v", r)
			}
		}()
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the task settles or ctx ends, whichever comes first.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then posts fn with the settled result to d.
func (f *Future[T]) Then(d *Dispatcher, fn func(T, error)) {
	go func() {
		<-f.done
		d.Post(func() { fn(f.val, f.err) })
	}()
}
