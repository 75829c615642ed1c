package rewrite

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/walteh/recolor/pkg/text"
)

// Diff renders the changed lines of a result, "-" for removed and "+" for added.
// Unchanged lines are omitted.
func Diff(result *text.ReplacementResult) string {
	if result == nil || !result.WasModified {
		return ""
	}

	dmp := diffmatchpatch.New()
	before, after, lines := dmp.DiffLinesToChars(string(result.OriginalContent), string(result.ModifiedContent))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(before, after, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
