// Package tui decides whether command output goes to a human at a terminal
// and, if so, styles it with lipgloss. Plain output is byte-for-byte stable
// for scripts.
package tui
