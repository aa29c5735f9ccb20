package puzzle

import "strings"

// Lines splits text on newlines. A trailing empty segment after the final
// newline is not a line, and a carriage return before a newline is dropped.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
