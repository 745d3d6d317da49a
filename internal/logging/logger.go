// Package logging constructs the process-wide zerolog logger: human console
// output on TTYs, JSON otherwise, with an optional append-to-file sink that
// always receives JSON.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Options captures the logger settings derived from config and flags.
type Options struct {
	Verbose bool      // debug level instead of info
	LogFile string    // optional append sink, "" to disable
	Output  io.Writer // overrides the stderr sink; used by tests
}

var (
	mu   sync.Mutex
	base = zerolog.New(consoleOrPlain(os.Stderr)).With().Timestamp().Logger()
)

// Configure rebuilds the global logger from opts. The returned close
// function releases the file sink (a no-op when none was opened).
func Configure(opts Options) (func() error, error) {
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	out := opts.Output
	if out == nil {
		out = consoleOrPlain(os.Stderr)
	}

	sinks := []io.Writer{out}
	closeFn := func() error { return nil }

	if opts.LogFile != "" {
		if dir := filepath.Dir(opts.LogFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		sinks = append(sinks, f)
		closeFn = f.Close
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(sinks...)).
		Level(level).
		With().Timestamp().Logger()

	mu.Lock()
	base = logger
	mu.Unlock()
	return closeFn, nil
}

// WithComponent returns a child logger annotated with the component name.
func WithComponent(component string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base.With().Str("component", component).Logger()
}

// consoleOrPlain wraps f in a console writer when it is a terminal and the
// environment does not forbid color; otherwise raw JSON goes to f.
func consoleOrPlain(f *os.File) io.Writer {
	if isatty.IsTerminal(f.Fd()) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return f
}
