package report

import (
	"os"

	"go.trai.ch/crate/internal/core/ports"
	"golang.org/x/term"
)

// Detect selects the reporter for the given environment: live progress
// rendering when attached to an interactive terminal, plain result paths
// on stdout otherwise so output stays script-consumable.
func Detect(isTTY bool, ci string) ports.Reporter {
	isCI := ci == "true" || ci == "1"
	if isTTY && !isCI {
		return New()
	}
	return NewConsole(os.Stdout)
}

// ForEnvironment applies Detect to the current process environment.
// Progress renders on stderr, so stdout detection is irrelevant here.
func ForEnvironment() ports.Reporter {
	return Detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}
