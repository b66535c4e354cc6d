package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how output is rendered.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts, and redirected output.
	ModePlain Mode = iota
	// ModeStyled is used when a human is reading the terminal.
	ModeStyled
)

// isTerminal is replaced in tests.
var isTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// DetectMode determines whether output written to f should be styled.
//
// Returns ModePlain if:
//   - f is not *os.File or not a terminal
//   - PQHASH_NO_STYLE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set
//
// Returns ModeStyled otherwise.
func DetectMode(w any) Mode {
	if os.Getenv("PQHASH_NO_STYLE") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	f, ok := w.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return ModePlain
	}
	return ModeStyled
}

// IsStyled is a convenience function that returns true if w should receive styled output.
func IsStyled(w any) bool {
	return DetectMode(w) == ModeStyled
}
