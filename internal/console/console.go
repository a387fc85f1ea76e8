package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Reporter receives one line per pipeline step.
type Reporter interface {
	Success(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Fatal(format string, args ...any)
}

// Console writes tagged lines to a terminal.
type Console struct {
	logger *log.Logger
}

// Options configures a Console.
type Options struct {
	// NoColor forces plain output even on a color-capable terminal.
	NoColor bool
}

// New returns a Console writing to w.
func New(w io.Writer, opts Options) *Console {
	logger := log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: false,
	})
	logger.SetStyles(styles())
	if opts.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return &Console{logger: logger}
}

func (c *Console) print(s Severity, format string, args []any) {
	c.logger.Log(s.level(), fmt.Sprintf(format, args...))
}

// Success reports a completed step.
func (c *Console) Success(format string, args ...any) { c.print(SeveritySuccess, format, args) }

// Info reports progress.
func (c *Console) Info(format string, args ...any) { c.print(SeverityInfo, format, args) }

// Warn reports a non-fatal problem; the run continues.
func (c *Console) Warn(format string, args ...any) { c.print(SeverityWarning, format, args) }

// Error reports a failure that does not end the run on its own.
func (c *Console) Error(format string, args ...any) { c.print(SeverityError, format, args) }

// Fatal reports the failure that ends the run. It does not exit.
func (c *Console) Fatal(format string, args ...any) { c.print(SeverityFatal, format, args) }
