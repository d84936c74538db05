package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.Mutex
	crashReset func()
	crashOut   io.Writer = os.Stderr
	crashExit  func(int) = os.Exit
)

// SetCrashReset registers the terminal restore run before a crash report is printed
func SetCrashReset(reset func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashReset = reset
}

// HandleCrash restores the terminal, prints the panic and stack trace, and exits 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	reset, out, exit := crashReset, crashOut, crashExit
	crashMu.Unlock()

	if reset != nil {
		reset()
	}

	// \r\n keeps the trace readable if the terminal is still in raw mode
	fmt.Fprintf(out, "\r\n\x1b[31mCOLOR-GUESS CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(out, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
