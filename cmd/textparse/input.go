package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

const stdinName = "<stdin>"

// readInput returns the contents of the named file, or of stdin when no
// file is given, together with the name to use in error messages.
func readInput(stdin io.Reader, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), stdinName, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read file: %w", err)
	}
	return string(data), args[0], nil
}

// parseDelimiter accepts a single character or one of the names tab and
// space, and the escape \t.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	case "space":
		return ' ', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
