package common

import "strings"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// SplitTrim splits s on sep and trims surrounding whitespace from every part.
// Empty parts are kept so positions stay stable.
func SplitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// Lines splits text into lines, accepting both "\n" and "\r\n" endings.
// A trailing newline does not produce an extra empty line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}
