//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop serve and watch mode.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
