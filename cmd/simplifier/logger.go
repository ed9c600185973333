package main

import (
	"fmt"
	"os"
)

// appLogger writes plain progress lines to stdout and red-highlighted
// error lines to stderr, and can be silenced entirely. It mirrors the
// original tool's minimal Logger rather than pulling in a structured
// logging library: the tool has exactly two message kinds and no
// structured fields, levels, or sinks to configure.
type appLogger struct {
	silent bool
}

func (l appLogger) Log(format string, args ...interface{}) {
	if l.silent {
		return
	}
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

func (l appLogger) Error(format string, args ...interface{}) {
	if l.silent {
		return
	}
	fmt.Fprintf(os.Stderr, "\033[1;31m"+format+"\033[0m\n", args...)
}
