// Package clog is a minimal debug/trace logger, adapted from the teacher's
// internal/debug package: a mutex-guarded writer that defaults to
// discarding output, enabled by a build-time-overridable flag rather than
// a full structured-logging dependency.
package clog

import (
	"fmt"
	"io"
	"sync"
)

// EnableDebug can be overridden at build time:
//
//	go build -ldflags "-X .../internal/clog.EnableDebug=true"
var EnableDebug = "false"

var (
	mu     sync.Mutex
	output io.Writer
)

// SetOutput sets the writer debug messages go to. Pass nil to disable.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debugf writes a formatted debug line if debugging is enabled and an
// output writer has been configured. It never returns an error: a failed
// debug write must not fail extraction.
func Debugf(format string, args ...any) {
	if EnableDebug != "true" {
		return
	}
	mu.Lock()
	w := output
	mu.Unlock()
	if w == nil {
		return
	}
	fmt.Fprintf(w, format+"\n", args...)
}
