package diff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

const contextLines = 3

// Unified renders a unified diff between before and after, labelled with
// path. Identical inputs produce an empty string.
func Unified(path, before, after string) (string, error) {
	if before == after {
		return "", nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  contextLines,
	}

	out, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", path, err)
	}
	return out, nil
}
