package main

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// fatal reports an argument error and exits. Only used before any
// network activity; failures after that point are printed by the
// command handlers so that session cleanup still runs.
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(2)
}

// truncate truncates a string to maxLen runes, preserving UTF-8
// boundaries.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}
