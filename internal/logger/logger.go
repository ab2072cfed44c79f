// Package logger provides per-component leveled logging with bounded
// on-disk log file retention. Each Logger writes to a timestamped file in
// the log directory and to the console, pruning the oldest files for its
// component so that at most MaxLogFiles remain.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	// DefaultLogDir is the directory log files are written to.
	DefaultLogDir = "logs"
	// DefaultMaxLogFiles is the retention count per component.
	DefaultMaxLogFiles = 3

	filenameLayout = "2006-01-02-15-04-05"
	lineLayout     = "2006-01-02 15:04:05"
)

// Logger is a leveled logging handle bound to a component name. Every line
// is written to both the component's log file and the console using the
// shared "<timestamp> - <LEVEL> - <message>" format.
type Logger struct {
	component string
	file      *os.File
	out       io.Writer
	now       func() time.Time
}

// Options configures logger construction. Zero values select the defaults.
type Options struct {
	LogDir      string
	MaxLogFiles int
	Console     io.Writer // defaults to os.Stderr

	// Now overrides the clock used for the log filename and line
	// timestamps. Filenames have second resolution, so two loggers for the
	// same component within one second share a file (appended, not
	// truncated).
	Now func() time.Time
}

// New creates a logger for a component using the default options.
func New(component string) (*Logger, error) {
	return NewWithOptions(component, Options{})
}

// NewWithOptions creates a logger for a component. It ensures the log
// directory exists, prunes old log files for this component down to
// MaxLogFiles-1, and opens a new timestamped log file.
func NewWithOptions(component string, opts Options) (*Logger, error) {
	dir := opts.LogDir
	if dir == "" {
		dir = DefaultLogDir
	}
	maxFiles := opts.MaxLogFiles
	if maxFiles <= 0 {
		maxFiles = DefaultMaxLogFiles
	}
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	pruneOldLogs(component, dir, maxFiles)

	name := fmt.Sprintf("%s-%s.log", component, now().Format(filenameLayout))
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		component: component,
		file:      file,
		out:       io.MultiWriter(file, console),
		now:       now,
	}, nil
}

// pruneOldLogs deletes the oldest log files for a component until at most
// maxFiles-1 remain, so the file about to be created keeps the total at
// maxFiles. Filenames embed the creation timestamp, so lexical order is
// chronological order. Deletion failures are reported to stderr and do not
// abort construction.
func pruneOldLogs(component, dir string, maxFiles int) {
	existing, err := filepath.Glob(filepath.Join(dir, component+"-*.log"))
	if err != nil {
		return
	}
	sort.Strings(existing)

	for len(existing) >= maxFiles {
		oldest := existing[0]
		existing = existing[1:]
		if err := os.Remove(oldest); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove log file %s: %v\n", oldest, err)
		}
	}
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log("INFO", format, args...)
}

// Warning logs a warning message.
func (l *Logger) Warning(format string, args ...interface{}) {
	l.log("WARNING", format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log("ERROR", format, args...)
}

// Critical logs a critical message.
func (l *Logger) Critical(format string, args ...interface{}) {
	l.log("CRITICAL", format, args...)
}

func (l *Logger) log(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "%s - %s - %s\n", l.now().Format(lineLayout), level, msg)
}

// Filename returns the path of the log file this logger writes to.
func (l *Logger) Filename() string {
	return l.file.Name()
}

// Close closes the underlying log file. Console output is unaffected.
func (l *Logger) Close() error {
	return l.file.Close()
}
