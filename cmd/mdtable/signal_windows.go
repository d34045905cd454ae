//go:build windows

package main

import "os"

// interruptSignals cancel a running conversion. Windows has no SIGTERM.
var interruptSignals = []os.Signal{os.Interrupt}
