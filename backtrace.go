package errgen

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame is a call site in a [Backtrace].
type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s\n\t%s:%d", f.Function, f.File, f.Line)
}

// Backtrace is a stack of frames from the most recent call.
type Backtrace []Frame

// maxDepth bounds the number of frames captured.
const maxDepth = 64

// Capture captures the backtrace of its caller. Conversion constructors call
// it to fill backtrace fields.
func Capture() Backtrace {
	pc := make([]uintptr, maxDepth)

	// Skip runtime.Callers and Capture.
	n := runtime.Callers(2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	bt := make(Backtrace, 0, n)
	for {
		fr, more := frames.Next()
		bt = append(bt, Frame{fr.Function, fr.File, fr.Line})
		if !more {
			break
		}
	}
	return bt
}

// String formats the backtrace like a goroutine trace.
func (bt Backtrace) String() string {
	var b strings.Builder
	for i, f := range bt {
		if i != 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.String())
	}
	return b.String()
}
