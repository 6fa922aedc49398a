package util

import (
	"errors"
	"strings"
	"unicode"
)

const maxFileNameLen = 80

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// DownloadName turns a resume title into an attachment filename with ext.
// Anything outside letters, digits, space, dash and underscore becomes "_".
func DownloadName(title, ext string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r), r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	base := strings.Trim(b.String(), " _")
	if runes := []rune(base); len(runes) > maxFileNameLen {
		base = strings.TrimSpace(string(runes[:maxFileNameLen]))
	}
	if base == "" {
		base = "resume"
	}
	if safe, err := SanitizeFileName(base); err == nil {
		base = safe
	}
	return base + "." + strings.TrimPrefix(ext, ".")
}
