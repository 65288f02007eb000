// Package name canonicalizes user-supplied project names into
// filesystem-safe identifiers. The sanitized form is lowercase,
// hyphenated, and safe to use as a single path segment on POSIX and
// Windows: it matches ^[a-z0-9][a-z0-9_-]*$ with no consecutive,
// leading, or trailing hyphens.
package name

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the maximum accepted raw name length when the
// caller does not configure one.
const DefaultMaxLength = 50

// Sentinel errors for the sanitization taxonomy. All are detected
// before any filesystem I/O happens.
var (
	ErrEmptyName          = errors.New("project name cannot be empty")
	ErrTooLong            = errors.New("project name too long")
	ErrEmptyAfterSanitize = errors.New("project name contains no usable characters")
	ErrInvalidStart       = errors.New("project name must start with a letter or number")
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^a-z0-9_-]`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
	validStart    = regexp.MustCompile(`^[a-z0-9]`)
)

// Sanitize canonicalizes raw using DefaultMaxLength.
func Sanitize(raw string) (string, error) {
	return SanitizeWithLimit(raw, DefaultMaxLength)
}

// SanitizeWithLimit canonicalizes raw into a filesystem-safe project
// name, rejecting input longer than maxLen. Disallowed characters are
// replaced with hyphens rather than rejected, so "My Cool Game"
// becomes "my-cool-game" and "../../etc" becomes "etc". The function
// is idempotent over its own output.
func SanitizeWithLimit(raw string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(s) > maxLen {
		return "", fmt.Errorf("%w (max %d characters)", ErrTooLong, maxLen)
	}

	s = strings.ToLower(s)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = disallowed.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-_")

	if s == "" {
		return "", ErrEmptyAfterSanitize
	}
	// Trimming above guarantees this; kept as an invariant check.
	if !validStart.MatchString(s) {
		return "", ErrInvalidStart
	}
	return s, nil
}
