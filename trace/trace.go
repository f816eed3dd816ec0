// Package trace logs nested function calls as an indented, optionally
// colored trace, in the spirit of a debug decorator: each call prints its
// name and arguments on entry and its result on exit.
package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

const (
	indentStep = "    "
	clipAt     = 100
	clipKeep   = 50
)

const (
	colorName  = "\x1b[32m" // green
	colorPunct = "\x1b[34m" // blue
	colorValue = "\x1b[31m" // red
	colorReset = "\x1b[0m"
)

// Logger writes call traces. The zero value writes plain text to stderr.
// A Logger tracks one call stack and is safe for use from a single goroutine.
type Logger struct {
	// W is the destination. If nil, os.Stderr is used.
	W io.Writer
	// Color enables ANSI color output.
	Color bool
	// Hub, if set, also receives every trace event for live streaming.
	Hub *Hub

	mu    sync.Mutex
	depth int
}

func (l *Logger) writer() io.Writer {
	if l.W == nil {
		return os.Stderr
	}
	return l.W
}

// clip shortens long rendered values, keeping the head and tail.
func clip(s string) string {
	if len(s) <= clipAt {
		return s
	}
	return s[:clipKeep] + " ..." + s[len(s)-clipKeep:]
}

func render(v any) string {
	return clip(fmt.Sprintf("%v", v))
}

// Enter logs the start of a call. Pair it with Exit.
func (l *Logger) Enter(name string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rendered := make([]string, len(args))
	for i, a := range args {
		rendered[i] = render(a)
	}

	indent := strings.Repeat(indentStep, l.depth)
	if l.Color {
		fmt.Fprintf(l.writer(), "%s%s%s%s(%s%s%s)%s\n",
			indent, colorName, name, colorPunct,
			colorValue, strings.Join(rendered, colorPunct+", "+colorValue), colorPunct,
			colorReset)
	} else {
		fmt.Fprintf(l.writer(), "%s%s(%s)\n", indent, name, strings.Join(rendered, ", "))
	}

	if l.Hub != nil {
		l.Hub.Push(Event{Depth: l.depth, Name: name, Args: rendered})
	}
	l.depth++
}

// Exit logs the result of the innermost open call.
func (l *Logger) Exit(result any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.depth--
	rendered := render(result)
	fmt.Fprintf(l.writer(), "%s= %s\n", strings.Repeat(indentStep, l.depth), rendered)

	if l.Hub != nil {
		l.Hub.Push(Event{Depth: l.depth, Result: rendered, Return: true})
	}
}

// Func1 wraps a one-argument function so every call is traced.
func Func1[A, R any](l *Logger, name string, fn func(A) R) func(A) R {
	return func(a A) R {
		l.Enter(name, a)
		out := fn(a)
		l.Exit(out)
		return out
	}
}

// Func2 wraps a two-argument function so every call is traced.
func Func2[A, B, R any](l *Logger, name string, fn func(A, B) R) func(A, B) R {
	return func(a A, b B) R {
		l.Enter(name, a, b)
		out := fn(a, b)
		l.Exit(out)
		return out
	}
}
