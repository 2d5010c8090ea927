package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog key-value pairs).
// When the returned error is logged through a logger configured by this package,
// the attributes are automatically extracted and included in the log output.
//
// This allows attaching context to errors at the point of creation, which is
// preserved through error wrapping and unwrapping, and displayed when the error
// is ultimately logged.
//
// Args should be key-value pairs compatible with slog (string keys followed by values).
//
// Example:
//
//	if err := scenario.Run(ctx); err != nil {
//	    return AnnotateError(err, "scenario", scenario.Name, "attempt", attempt)
//	}
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

// slogError wraps an error with structured logging attributes.
// It implements the error interface and supports error unwrapping,
// making it compatible with errors.Is and errors.As.
type slogError struct {
	err   error       // The underlying error
	attrs []slog.Attr // Structured logging attributes attached to this error
}

// Error returns the error message from the underlying error.
func (s *slogError) Error() string {
	return s.err.Error()
}

// Unwrap returns the underlying error, supporting error chain traversal.
func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// slogErrorLogger is a slog.Handler decorator that extracts structured attributes
// from annotated errors (created via AnnotateError) and includes them in log output.
//
// When a log record contains an error attribute that was created with AnnotateError,
// this handler extracts the embedded attributes and adds them to the log record.
// All actual logging is delegated to the wrapped handler.
type slogErrorLogger struct {
	inner slog.Handler // The wrapped handler that performs actual logging
}

var _ slog.Handler = (*slogErrorLogger)(nil)

// Enabled reports whether the handler handles records at the given level.
// Delegates to the inner handler.
func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

// Handle processes a log record, extracting attributes from any annotated errors
// and including them in the final log output.
//
// When the handler finds an attribute holding an annotated error (slogError), it:
// 1. Replaces the error attribute with the unwrapped error
// 2. Extracts the embedded attributes and adds them to the record
//
// Records without annotated errors pass through unchanged.
func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		val := attr.Value.Any()

		err, ok := val.(error)
		if !ok {
			baseAttrs = append(baseAttrs, attr)

			return true
		}

		var se *slogError

		if errors.As(err, &se) {
			baseAttrs = append(baseAttrs, slog.Attr{
				Key:   attr.Key,
				Value: slog.AnyValue(se.err),
			})

			errAttrs = append(errAttrs, se.attrs...)
		} else {
			// Plain errors are kept as-is.
			baseAttrs = append(baseAttrs, attr)
		}

		return true
	})

	if len(errAttrs) > 0 {
		r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
		r.AddAttrs(baseAttrs...)
		r.AddAttrs(errAttrs...)

		return s.inner.Handle(ctx, r)
	}

	return s.inner.Handle(ctx, record)
}

// WithAttrs returns a new handler with the given attributes added.
// The new handler wraps the result of calling WithAttrs on the inner handler,
// maintaining the error annotation extraction behavior.
func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{
		inner: s.inner.WithAttrs(attrs),
	}
}

// WithGroup returns a new handler with the given group name.
// The new handler wraps the result of calling WithGroup on the inner handler,
// maintaining the error annotation extraction behavior.
func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{
		inner: s.inner.WithGroup(name),
	}
}
