package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff returns a line diff of from and to.  Removed lines are prefixed
// with "-", added lines with "+" and unchanged lines with a space.  The result
// is empty when the texts are equal.
func TextDiff(from, to string, colors bool) string {
	if from == to {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colors {
		del.EnableColor()
		ins.EnableColor()
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		for _, ln := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				writeLine(buf, "-"+ln, del, colors)
			case diffpatch.DiffInsert:
				writeLine(buf, "+"+ln, ins, colors)
			default:
				writeLine(buf, " "+ln, nil, false)
			}
		}
	}
	return buf.String()
}

func writeLine(buf *strings.Builder, ln string, c *color.Color, colors bool) {
	if colors {
		ln = c.Sprint(ln)
	}
	buf.WriteString(ln)
	buf.WriteByte('\n')
}

func splitLines(s string) []string {
	res := strings.SplitAfter(s, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	for i, ln := range res {
		res[i] = strings.TrimSuffix(ln, "\n")
	}
	return res
}
