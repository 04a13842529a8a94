package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Start starts a terminal spinner on stderr with the given message and
// returns the function that stops and clears it. Nothing is drawn when
// stderr is not a terminal, so captured output stays clean.
//
//	stop := spinner.Start("Running netsh")
//	err := doWork()
//	stop()
func Start(message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " " + message
	s.Start()

	return s.Stop
}

// Disabled is a drop-in for Start that never draws anything.
func Disabled(string) func() {
	return func() {}
}
