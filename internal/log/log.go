package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level represents the debug verbosity level.
type Level int

const (
	Off Level = iota
	Basic
	Detailed
	Trace
	Wire
)

var (
	mu     sync.RWMutex
	level  Level     = Off
	output io.Writer = os.Stderr
)

// SetLevel sets the global debug level.
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// LevelFromInt converts an int to a Level, clamping out-of-range values.
func LevelFromInt(i int) Level {
	switch {
	case i <= 0:
		return Off
	case i == 1:
		return Basic
	case i == 2:
		return Detailed
	case i == 3:
		return Trace
	default:
		return Wire
	}
}

// Debug writes a debug message if the global level permits.
func Debug(l Level, format string, a ...interface{}) {
	mu.RLock()
	current := level
	w := output
	mu.RUnlock()
	if current >= l {
		fmt.Fprintf(w, "DEBUG: "+format, a...)
	}
}

// Log writes a message unconditionally.
func Log(format string, a ...interface{}) {
	mu.RLock()
	w := output
	mu.RUnlock()
	fmt.Fprintf(w, format, a...)
}

// SetOutput allows overriding the output destination.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
}
