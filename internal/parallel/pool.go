package parallel

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// PanicError reports a panic recovered inside a task run by ExecuteAll.
type PanicError struct {
	// Index is the position of the faulting task in the work slice.
	Index int

	// Value is the value passed to panic.
	Value any

	// Stack is the goroutine stack captured at recovery.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("parallel: task %d panicked: %v", e.Index, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ExecuteAll runs every task on its own goroutine and waits for all of them
// to return. This is the fork-join barrier of the renderer: nothing written
// by a task is observable to the caller before ExecuteAll returns.
//
// The first non-nil error, in completion order, is returned. A panicking
// task is recovered and reported as a *PanicError; the remaining tasks still
// run to completion. An empty work slice returns nil immediately.
func ExecuteAll(work []func() error) error {
	if len(work) == 0 {
		return nil
	}

	var g errgroup.Group
	for i, fn := range work {
		if fn == nil {
			continue
		}
		g.Go(func() (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = &PanicError{Index: i, Value: v, Stack: debug.Stack()}
				}
			}()
			return fn()
		})
	}
	return g.Wait()
}
