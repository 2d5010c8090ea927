package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/dmcfalls/CSet/lazy"
)

// subsystem holds the default subsystem name embedded in every log record.
// Using atomic.Value to ensure thread-safe reads and writes.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
// This avoids collisions with other packages that might be using the same string
// values for their own keys.
type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application.
// It returns the default logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	// Protect against concurrent configuration changes
	configMutex.Lock()
	defer configMutex.Unlock()

	var handler slog.Handler

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.JSON {
		// Configure logging for JSON output
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		// Configure logging for text output
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	// Unpack annotated errors (see AnnotateError) into log attributes.
	handler = &slogErrorLogger{inner: handler}

	// Create a logger
	logger := slog.New(handler)

	// Set the default logger
	slog.SetDefault(logger)

	// Set up the legacy logger (we won't be using this directly, but 3rd party packages might)
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	// Set the default name of the subsystem
	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// ConfigureLogging configures logging for the application, reading defaults
// from the LOG_JSON, LOG_LEVEL, LEGACY_LOG_LEVEL and LOG_OUTPUT environment
// variables. Invalid values produce a warning and fall back to the default.
// It returns the default logger.
func ConfigureLogging(app string, opts ...Option) *slog.Logger {
	options := Options{
		Subsystem: app,

		// Default log format is text
		JSON: envBool("LOG_JSON", false),

		// Default log level is info
		MinLevel: envLevel("LOG_LEVEL", slog.LevelInfo),

		// If any packages use the old log package, we'll need to configure that
		// as well (redirected in to slog). Since the old log package doesn't
		// support levels, we have to tell it what level to use.
		LegacyLevel: envLevel("LEGACY_LOG_LEVEL", slog.LevelInfo),

		Output: envOutput("LOG_OUTPUT"),
	}

	for _, o := range opts {
		o(&options)
	}

	// Do the actual configuration
	return ConfigureLoggingWithOptions(options)
}

// envBool reads a boolean environment variable, falling back to def when the
// variable is unset or unparsable.
func envBool(name string, def bool) bool {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return def
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("ignoring invalid boolean environment variable",
			"name", name, "value", raw)

		return def
	}

	return val
}

// envLevel reads a log level environment variable ("debug", "info", "warn",
// "error", optionally with an offset like "info+2"), falling back to def.
func envLevel(name string, def slog.Level) slog.Level {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return def
	}

	var level slog.Level

	if err := level.UnmarshalText([]byte(raw)); err != nil {
		slog.Warn("ignoring invalid log level environment variable",
			"name", name, "value", raw)

		return def
	}

	return level
}

// envOutput reads a log output environment variable ("stdout" or "stderr").
// Anything else produces a warning and falls back to stdout.
func envOutput(name string) io.Writer {
	switch outName := os.Getenv(name); outName {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	default:
		slog.Warn("falling back to stdout",
			"error", fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName))

		return os.Stdout
	}
}

// WithMuted adds a muted flag to the context. When muted is true, all logging
// operations on this context will be suppressed (no log output will be produced).
// This is useful for silencing logs in specific code paths, such as repeated
// scenario runs or other high-frequency operations that would otherwise create
// excessive log noise.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

// isMuted checks if the context has the muted flag set to true.
// Returns false if the context is nil or if the mute flag is not set.
// This is used internally by getBaseLogger to determine whether to return
// a nullLogger that suppresses all output.
func isMuted(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	muted := ctx.Value(contextKey("mute"))
	if muted == nil {
		return false
	}

	val, ok := muted.(bool)
	if !ok {
		return false
	}

	return val
}

// WithLogger overrides the logger returned by Get for this context. The
// configured default (and its subsystem and host attributes) is bypassed
// entirely; values added via With still apply. Intended for tests that
// want to capture a component's logging.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("logger"), log)
}

// getLoggerOverride returns the logger installed by WithLogger, if any.
func getLoggerOverride(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}

	val := ctx.Value(contextKey("logger"))
	if val == nil {
		return nil
	}

	log, ok := val.(*slog.Logger)
	if !ok {
		return nil
	}

	return log
}

// WithSubsystem overrides the default subsystem name for loggers derived
// from the returned context.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem from the context. If the
// subsystem is not provided, the default subsystem will be used.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	// Check for a subsystem override.
	sub := ctx.Value(contextKey("subsystem"))
	if sub != nil {
		val, ok := sub.(string)
		if ok {
			return val
		}
	}

	// Return the default subsystem value (thread-safe read)
	if defaultSub := subsystem.Load(); defaultSub != nil {
		if val, ok := defaultSub.(string); ok {
			return val
		}
	}

	return ""
}

// hostname holds the local machine name. Resolved once, on first use.
// nolint:gochecknoglobals
var hostname = lazy.New[string](func() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}

	return h
})

// getRealContext extracts the first non-nil context from a variadic list.
// If no context is provided or all are nil, it returns context.Background().
func getRealContext(ctx ...context.Context) context.Context {
	var realCtx context.Context

	// Honestly we only care if there's zero or one contexts.
	// If there's more than one, we'll just use the first one.
	for _, c := range ctx {
		if c != nil {
			realCtx = c //nolint:fatcontext

			break
		}
	}

	if realCtx == nil {
		// No context provided, so we'll just use a sane default
		realCtx = context.Background()
	}

	return realCtx
}

// nullHandler is a slog.Handler implementation that discards all log output.
// It is used to implement the muted logging feature. All methods are no-ops:
// - Enabled always returns false (no log levels are enabled)
// - Handle does nothing with log records
// - WithAttrs and WithGroup return the same handler (no-op transformations).
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

// nullLogger is a logger that discards all output. It is returned by getBaseLogger
// when the context has the muted flag set to true. This allows code to call logging
// methods without producing any output.
var nullLogger = slog.New(&nullHandler{})

// getBaseLogger returns a logger with the subsystem and host name already set.
func getBaseLogger(ctx context.Context) *slog.Logger {
	// If the logger is muted, we still return a logger,
	// but the logger is incapable of outputting anything.
	if isMuted(ctx) {
		return nullLogger
	}

	// An override (usually a test logger) bypasses the configured default.
	if override := getLoggerOverride(ctx); override != nil {
		if vals := getValues(ctx); vals != nil {
			return override.With(vals...)
		}

		return override
	}

	// Get the default logger
	logger := slog.Default()

	// Add the subsystem name, and the host name.
	logger = logger.With(
		"subsystem", GetSubsystem(ctx),
		"host", hostname.Get())

	// Check for key-values to add to the logger.
	vals := getValues(ctx)
	if vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}

// Get returns a logger. If a context is provided, subsystem overrides and
// values embedded via With and WithSubsystem are applied to the returned
// logger. Calling Get with no arguments returns the base logger.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	return getBaseLogger(getRealContext(ctx...))
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		// Corner case, don't bother creating a new context.
		return ctx
	}

	vals := append(getValues(ctx), values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

// getValues retrieves logger values from the context that were added via With.
// Returns nil if no values are present in the context.
func getValues(ctx context.Context) []any { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	// Check for a value override.
	vals := ctx.Value(contextKey("loggerValues"))
	if vals != nil {
		val, ok := vals.([]any)
		if ok {
			return val
		}

		return nil
	}

	return nil
}
