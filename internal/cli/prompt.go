package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pwaforge-labs/pwaforge/internal/branding"
)

// promptName asks for a project name on r, writing the banner and
// prompt to w. maxLen is the enforced name length, shown in the
// prompt. It returns io.EOF when input ends before a name is entered
// (^D, closed stdin), which callers treat as a cancel.
func promptName(r io.Reader, w io.Writer, maxLen int) (string, error) {
	reader := bufio.NewReader(r)

	fmt.Fprintln(w, branding.DisplayName()+" — PWA Game Framework Generator")
	fmt.Fprintln(w, "Create an installable, offline-capable web-app skeleton for game development.")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Enter project name (max %d chars, letters/numbers/hyphens): ", maxLen)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
