package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess  = 0 // Report written
	ExitRejected = 1 // validate found rejected records or unparseable lines
	ExitError    = 2 // Missing input, nothing valid to analyze, or bad configuration
)

// RejectedRecordsError indicates that validation ran to completion but the
// log contains records that analysis would skip.
type RejectedRecordsError struct {
	Rejected    int
	Unparseable int
}

func (e *RejectedRecordsError) Error() string {
	return fmt.Sprintf("%d record(s) rejected, %d line(s) unparseable", e.Rejected, e.Unparseable)
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var rejected *RejectedRecordsError
	if errors.As(err, &rejected) {
		return ExitRejected
	}
	// All other errors are input/configuration errors
	return ExitError
}
