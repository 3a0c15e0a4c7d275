package tree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/pinit-dev/pinit/cli/util"
)

// Diff returns a unified diff between the template content and its rendered
// content. Only Render plans have a diff, the empty string is returned for others.
func (t *Transformer) Diff(plan Plan) (string, error) {
	if plan.Action != Render {
		return "", nil
	}

	text, err := util.GetFileContent(filepath.Join(t.root, plan.Entry.Path))
	if err != nil {
		return "", &FilesystemError{Op: "read", Path: plan.Entry.Path, Err: err}
	}
	rendered, err := t.opts.Engine.RenderText(text, t.opts.Data)
	if err != nil {
		return "", fmt.Errorf("failed to render %q: %w", plan.Entry.Path, err)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(text),
		B:        splitLines(rendered),
		FromFile: plan.Entry.Path,
		ToFile:   plan.Destination,
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build diff for %q: %w", plan.Entry.Path, err)
	}
	return diff, nil
}

// splitLines splits text into lines keeping the line breaks. Unlike
// difflib.SplitLines, no empty line is added after the last line break.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
