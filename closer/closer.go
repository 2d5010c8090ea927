// Package closer provides utilities for managing io.Closer resources.
//
// The package includes:
//   - Closer: A collector that manages multiple io.Closer instances and closes them all at once
//   - CloseOnce: A thread-safe wrapper that ensures an io.Closer is only closed once
//   - HandlePanic: A wrapper that recovers from panics in Close() and converts them to errors
//   - CancelableCloser: A wrapper whose Close() can be turned into a no-op
//   - CustomCloser: Creates an io.Closer from any cleanup function
//
// Containers in this module implement io.Closer (Close destroys the container
// and releases its elements), so these combinators compose directly with
// container teardown.
package closer

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"sync"

	"go.uber.org/atomic"

	cseterrors "github.com/dmcfalls/CSet/errors"
)

// customCloser is an internal implementation that wraps a function to make it an io.Closer.
type customCloser struct {
	closeFn func() error // The cleanup function to execute when Close() is called
}

// CustomCloser creates an io.Closer from a cleanup function.
// This allows arbitrary cleanup logic to be integrated with the io.Closer interface.
//
// Special cases:
//   - Returns nil if closeFn is nil
//
// Example usage:
//
//	closer := CustomCloser(func() error {
//	    intermediate.Destroy()
//	    return nil
//	})
//	defer closer.Close()
func CustomCloser(closeFn func() error) io.Closer {
	if closeFn == nil {
		return nil
	}

	return &customCloser{closeFn: closeFn}
}

// Close executes the wrapped cleanup function and returns its result.
func (c *customCloser) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}

	return nil
}

// Closer is a collector that manages multiple io.Closer instances.
// It allows you to add closers incrementally and close them all at once,
// collecting any errors that occur during the close operations.
//
// Example usage:
//
//	collector := NewCloser()
//	collector.Add(evens)
//	collector.Add(odds)
//
//	// Both sets will be destroyed, even if one Close returns an error
//	return collector.Close()
type Closer struct {
	closers []io.Closer
}

// NewCloser creates a new Closer with zero or more initial io.Closer instances.
func NewCloser(closers ...io.Closer) *Closer {
	return &Closer{closers: closers}
}

// Add adds an io.Closer to the collection. The closer will be closed when Close() is called.
// Nil closers are allowed and will be safely skipped during Close().
//
// Note: Add is not thread-safe. If you need to add closers concurrently, use external synchronization.
func (c *Closer) Add(closer io.Closer) {
	c.closers = append(c.closers, closer)
}

// Close closes all registered io.Closer instances in the order they were added.
// If any closers return errors, all closers will still be attempted, and all errors
// will be collected and returned as a joined error using errors.Join.
//
// Nil closers are safely skipped.
//
// Returns nil if all closers succeeded, or a joined error containing all failures.
func (c *Closer) Close() error {
	var errs []error

	for _, closer := range c.closers {
		if closer != nil {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// closeOnceImpl is the internal implementation of a thread-safe single-close wrapper.
// It uses a mutex to ensure that only one Close() call actually invokes the underlying closer.
type closeOnceImpl struct {
	mut    sync.Mutex
	closed bool      // Protected by mut: tracks whether Close() has completed successfully
	closer io.Closer // The underlying closer to protect
}

// CloseOnce wraps an io.Closer to ensure it can only be closed once.
// Subsequent calls to Close() will be no-ops and return nil.
//
// This is useful for resources that may be passed through multiple cleanup
// paths, where you want to ensure Close() is called but avoid double-close bugs.
//
// Thread-safety: CloseOnce is safe for concurrent use. Multiple goroutines can
// call Close() simultaneously, and only one will actually close the underlying resource.
//
// Error handling: If the underlying Close() returns an error, the resource is NOT
// marked as closed, and subsequent Close() calls will retry. This ensures that
// transient errors can be retried, but successful closes are idempotent.
//
// Special cases:
//   - Returns nil if the input closer is nil
//   - If the input is already a *closeOnceImpl, returns it unchanged (idempotent)
func CloseOnce(closer io.Closer) io.Closer {
	if closer == nil {
		return nil
	}

	// Idempotent: if already wrapped, return the existing wrapper
	once, ok := closer.(*closeOnceImpl)
	if ok {
		return once
	}

	return &closeOnceImpl{closer: closer}
}

// Close closes the underlying io.Closer exactly once. Subsequent calls return nil without closing.
//
// If the first Close() call returns an error, the closer is NOT marked as closed,
// allowing subsequent Close() calls to retry. Once Close() succeeds (returns nil),
// all future calls will return nil without invoking the underlying closer.
//
// Thread-safety: This method is safe for concurrent use.
func (c *closeOnceImpl) Close() error {
	if c.closer == nil {
		return nil
	}

	c.mut.Lock()
	defer c.mut.Unlock()

	if c.closed {
		return nil
	}

	if err := c.closer.Close(); err != nil {
		return err
	}

	c.closed = true

	return nil
}

// HandlePanic wraps an io.Closer to recover from panics during Close() and convert them to errors.
// This prevents panics in Close() calls from crashing the program, which is especially useful
// when a cleanup callback registered with a container might itself misbehave.
//
// If the wrapped closer panics during Close(), the panic is recovered and converted to an error
// that includes the panic value and stack trace. If Close() also returns an error, both the
// panic error and the Close() error are joined using errors.Join.
//
// Special cases:
//   - Returns nil if the input closer is nil
//   - If the input is already a *panicHandlingImpl, returns it unchanged (idempotent)
//
// Example usage:
//
//	closer := HandlePanic(riskyCloser)
//	if err := closer.Close(); err != nil {
//	    // Will receive an error instead of a panic if riskyCloser panics
//	    log.Printf("close failed: %v", err)
//	}
func HandlePanic(closer io.Closer) io.Closer {
	if closer == nil {
		return nil
	}

	// Idempotent: if already wrapped, return the existing wrapper
	if _, ok := closer.(*panicHandlingImpl); ok {
		return closer
	}

	return &panicHandlingImpl{closer: closer}
}

// panicHandlingImpl is the internal implementation of a panic-recovering closer wrapper.
type panicHandlingImpl struct {
	closer io.Closer // The underlying closer to protect
}

// Close calls the underlying closer's Close() method with panic recovery.
// If the underlying Close() panics, the panic is recovered and converted to an error.
// If both Close() returns an error AND panics, both errors are joined.
func (p *panicHandlingImpl) Close() (err error) {
	if p.closer == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err2 := panicRecoveryError(r, debug.Stack())
			if err == nil {
				err = err2
			} else {
				err = errors.Join(err, err2)
			}
		}
	}()

	return p.closer.Close()
}

// panicRecoveryError converts a recovered panic value and optional stack trace
// into a standard error wrapping ErrPanicRecovery. Returns nil for a nil panic value.
func panicRecoveryError(recovered any, stack []byte) error {
	if recovered == nil {
		return nil
	}

	if recoveredErr, ok := recovered.(error); ok {
		if stack != nil {
			return fmt.Errorf("%w: %w\nstack trace:\n%s", cseterrors.ErrPanicRecovery, recoveredErr, string(stack))
		}

		return fmt.Errorf("%w: %w", cseterrors.ErrPanicRecovery, recoveredErr)
	}

	if stack != nil {
		return fmt.Errorf("%w: %v\nstack trace:\n%s", cseterrors.ErrPanicRecovery, recovered, string(stack))
	}

	return fmt.Errorf("%w: %v", cseterrors.ErrPanicRecovery, recovered)
}

// cancelableCloser is an internal implementation that wraps an io.Closer with the ability
// to cancel the close operation. It uses an atomic boolean to track whether Close() should
// actually close the underlying resource or be a no-op.
type cancelableCloser struct {
	shouldClose *atomic.Bool // Atomic flag: true means Close() will close, false means Close() is a no-op
	closer      io.Closer    // The underlying closer to conditionally close
}

// Close conditionally closes the underlying io.Closer based on the shouldClose flag.
// If the cancel function has been called, this method returns nil without closing.
//
// Thread-safety: This method is safe for concurrent use due to the atomic shouldClose flag.
func (c *cancelableCloser) Close() error {
	if c.closer == nil {
		return nil
	}

	if c.shouldClose.Load() {
		return c.closer.Close()
	}

	return nil
}

// cancel prevents future Close() calls from closing the underlying resource.
// After calling cancel(), Close() will become a no-op that returns nil.
// This method is safe for concurrent use.
func (c *cancelableCloser) cancel() {
	c.shouldClose.Store(false)
}

// CancelableCloser wraps an io.Closer with the ability to cancel the close operation.
// It returns both a closer and a cancel function. If the cancel function is called before Close(),
// then Close() will become a no-op and return nil without closing the underlying resource.
//
// This suits destroy-on-failure patterns: register the container for teardown,
// and cancel once ownership is successfully handed to the caller.
//
// Special cases:
//   - Returns (nil, no-op function) if the input closer is nil
//   - If the input is already a *cancelableCloser, returns it with its cancel function (idempotent)
//
// Example usage:
//
//	result := buildResultSet()
//	closer, cancel := CancelableCloser(result)
//	defer closer.Close() // Destroys result unless cancel() is called
//
//	if err := populate(result); err != nil {
//	    return nil, err // result is destroyed by the deferred Close
//	}
//
//	cancel() // Success, the caller owns result now
//	return result, nil
func CancelableCloser(c io.Closer) (closer io.Closer, cancel func()) {
	if c == nil {
		return nil, func() {}
	}

	cc, ok := c.(*cancelableCloser)
	if ok {
		return cc, cc.cancel
	}

	cc = &cancelableCloser{
		shouldClose: atomic.NewBool(true),
		closer:      c,
	}

	return cc, cc.cancel
}
