//go:build !windows

package main

import (
	"os"
	"syscall"
)

// interruptSignals cancel a running conversion.
var interruptSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
