package writer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5/util"

	"github.com/modu-ai/flutterkit/internal/core/plan"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

// Drift describes an existing file that differs from its generated form.
type Drift struct {
	Path string
	// Diff is a unified diff from the file on disk to the generated content.
	Diff string
}

func (w *Writer) checkDrift(f plan.FileSpec, vars map[string]string) (Drift, error) {
	generated, err := w.content(f, vars)
	if err != nil {
		return Drift{}, err
	}
	existing, err := util.ReadFile(w.fs, f.Path)
	if err != nil {
		return Drift{}, fmt.Errorf("%w: read %q: %w", ErrWrite, f.Path, err)
	}
	return Drift{Path: f.Path, Diff: UnifiedDiff(f.Path, existing, generated)}, nil
}

type lineOp struct {
	kind byte // ' ', '-' or '+'
	text string
}

// diffLines returns the line edit script turning a into b, built from a
// longest-common-subsequence table over the suffixes of both inputs.
func diffLines(a, b []string) []lineOp {
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]lineOp, 0, max(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			ops = append(ops, lineOp{' ', a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, lineOp{'-', a[i]})
			i++
		default:
			ops = append(ops, lineOp{'+', b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		ops = append(ops, lineOp{'-', a[i]})
	}
	for ; j < len(b); j++ {
		ops = append(ops, lineOp{'+', b[j]})
	}
	return ops
}

// UnifiedDiff renders a unified diff from before to after labelled with name.
// It returns "" when both contents are identical.
func UnifiedDiff(name string, before, after []byte) string {
	if bytes.Equal(before, after) {
		return ""
	}
	ops := diffLines(splitLines(before), splitLines(after))

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", name, name)

	start := 0
	for {
		change := nextChange(ops, start)
		if change < 0 {
			break
		}
		lo := max(change-diffContext, start)
		hi := hunkEnd(ops, change)
		end := min(hi+diffContext, len(ops))

		writeHunk(&sb, ops, lo, end)
		start = end
	}
	return sb.String()
}

func nextChange(ops []lineOp, from int) int {
	for i := from; i < len(ops); i++ {
		if ops[i].kind != ' ' {
			return i
		}
	}
	return -1
}

// hunkEnd extends a change group while the next change is close enough for
// the context windows to touch.
func hunkEnd(ops []lineOp, change int) int {
	hi := change
	for hi < len(ops) {
		if ops[hi].kind != ' ' {
			hi++
			continue
		}
		next := nextChange(ops, hi)
		if next < 0 || next-hi > 2*diffContext {
			break
		}
		hi = next
	}
	return hi
}

func writeHunk(sb *strings.Builder, ops []lineOp, lo, end int) {
	var oldPos, newPos int
	for _, op := range ops[:lo] {
		if op.kind != '+' {
			oldPos++
		}
		if op.kind != '-' {
			newPos++
		}
	}
	var oldCount, newCount int
	for _, op := range ops[lo:end] {
		if op.kind != '+' {
			oldCount++
		}
		if op.kind != '-' {
			newCount++
		}
	}

	fmt.Fprintf(sb, "@@ -%s +%s @@\n", hunkRange(oldPos, oldCount), hunkRange(newPos, newCount))
	for _, op := range ops[lo:end] {
		sb.WriteByte(op.kind)
		sb.WriteString(op.text)
		sb.WriteByte('\n')
	}
}

// hunkRange formats a hunk header range; an empty range points at the
// line before it.
func hunkRange(pos, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", pos)
	}
	return fmt.Sprintf("%d,%d", pos+1, count)
}

func splitLines(b []byte) []string {
	s := strings.TrimRight(string(b), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
