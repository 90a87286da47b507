package libdiff

import (
	"strings"

	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff returns a line diff of the pretty JSON renderings of from and
// to.  Removed lines start with "- ", added lines with "+ " and
// unchanged lines with two blanks.  It returns "" when the renderings
// are identical.
func TextDiff(from, to *ir.Node) string {
	a := encode.PrettyJSON(from) + "\n"
	b := encode.PrettyJSON(to) + "\n"
	if a == b {
		return ""
	}
	return diffLines(a, b)
}

func diffLines(a, b string) string {
	dmp := diffpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	return buf.String()
}
