package steps

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/apex/log"

	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
)

const defaultEditor = "vi"

// EditProperties represents properties file editing step.
type EditProperties struct{}

// getEditor returns the editor command line from $VISUAL or $EDITOR.
func getEditor() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if editor := strings.Fields(os.Getenv(env)); len(editor) > 0 {
			return editor
		}
	}
	return []string{defaultEditor}
}

// Run opens the properties file in the editor and waits for it to exit.
func (EditProperties) Run(ctx context.Context, scaffoldCtx *scaffold_ctx.ScaffoldCtx,
	_ *ProjectCtx,
) error {
	if !scaffoldCtx.EditProperties {
		return nil
	}

	editor := getEditor()
	log.Debugf("Editing %s with %s", scaffoldCtx.PropertiesFile, strings.Join(editor, " "))
	cmd := exec.CommandContext(ctx, editor[0],
		append(editor[1:], scaffoldCtx.PropertiesFile)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to edit %s: %w", scaffoldCtx.PropertiesFile, err)
	}
	return nil
}
