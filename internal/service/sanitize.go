package service

import (
	"fmt"
	"strings"
)

// maxQueryLength bounds accepted query text.
const maxQueryLength = 2000

// SanitizeQuery trims surrounding whitespace and truncates overlong input.
// It does not alter the query's content otherwise. An input that is empty
// after trimming fails with ErrInvalidInput.
func SanitizeQuery(raw string) (string, error) {
	sanitized := strings.TrimSpace(raw)

	if runes := []rune(sanitized); len(runes) > maxQueryLength {
		sanitized = strings.TrimSpace(string(runes[:maxQueryLength]))
	}

	if sanitized == "" {
		return "", fmt.Errorf("%w: message cannot be empty", ErrInvalidInput)
	}

	return sanitized, nil
}
