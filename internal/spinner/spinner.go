// Package spinner draws a one-line activity indicator while a results log
// is read and analyzed.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const interval = 80 * time.Millisecond

// Interactive reports whether w is a terminal worth animating on.
func Interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Start animates message with the elapsed time on w until the returned
// function is called. Nothing is drawn when w is not a terminal, so the
// stop function is always safe to call.
func Start(w io.Writer, message string) (stop func()) {
	if !Interactive(w) {
		return func() {}
	}
	return run(w, message, time.Now)
}

func run(w io.Writer, message string, now func() time.Time) func() {
	done := make(chan struct{})
	cleared := make(chan struct{})
	var once sync.Once
	began := now()
	width := 0

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-done:
				fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", width)) //nolint:errcheck
				close(cleared)
				return
			case <-ticker.C:
				line := fmt.Sprintf("%s %s (%.1fs)", frames[i%len(frames)], message, now().Sub(began).Seconds())
				width = max(width, len(line))
				fmt.Fprintf(w, "\r%s", line) //nolint:errcheck
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
		<-cleared
	}
}
