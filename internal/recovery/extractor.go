package recovery

import "strings"

// Extract returns the widest span from the first '{' to the last '}' in raw.
// It does not balance braces: text holding two separate objects yields both
// plus whatever sits between them.
func Extract(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return "", ErrExtractionFailed
	}
	return raw[start : end+1], nil
}
