// Package detector decides how the CLI renders its log.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is the rendering of the log.
type OutputMode int

const (
	// ModeAuto picks ModePretty on terminals and ModeJSON elsewhere.
	ModeAuto OutputMode = iota
	// ModePretty writes colored lines.
	ModePretty
	// ModeJSON writes one JSON record per line.
	ModeJSON
)

// Env is what detection looks at.
type Env struct {
	IsTerminal bool
	CI         bool
}

// Detect inspects stderr and the CI variable.
func Detect() Env {
	ci := os.Getenv("CI")
	return Env{
		IsTerminal: term.IsTerminal(int(os.Stderr.Fd())),
		CI:         ci == "true" || ci == "1",
	}
}

// Mode returns the mode used when nothing is forced.
func (e Env) Mode() OutputMode {
	if e.IsTerminal && !e.CI {
		return ModePretty
	}
	return ModeJSON
}

// ResolveMode applies the --output flag ("auto", "pretty", "json") to the
// detected environment. Unknown values behave like "auto".
func ResolveMode(env Env, flag string) OutputMode {
	switch flag {
	case "pretty", "text":
		return ModePretty
	case "json":
		return ModeJSON
	default:
		return env.Mode()
	}
}
