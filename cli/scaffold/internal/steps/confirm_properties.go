package steps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"

	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
	"github.com/pinit-dev/pinit/cli/util"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(label string) (bool, error)
}

// promptConfirmer asks using the terminal prompt.
type promptConfirmer struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewPromptConfirmer creates a terminal confirmer.
func NewPromptConfirmer() Confirmer {
	return promptConfirmer{stdin: os.Stdin, stdout: os.Stdout}
}

// Confirm shows the prompt. Any answer except "y" is a decline.
func (confirmer promptConfirmer) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     confirmer.stdin,
		Stdout:    confirmer.stdout,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ConfirmProperties represents properties display and confirmation step.
type ConfirmProperties struct {
	// Confirmer is used to get user answer.
	Confirmer Confirmer
	// Writer receives the properties listing. Stdout is used if nil.
	Writer io.Writer
	// IsInteractive reports if the user can answer. Stdin terminal check is used if nil.
	IsInteractive func() bool
}

func isStdinTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Run prints the properties and asks the user to confirm them.
// A decline aborts the run before the tree is touched.
func (step ConfirmProperties) Run(_ context.Context, scaffoldCtx *scaffold_ctx.ScaffoldCtx,
	projectCtx *ProjectCtx,
) error {
	writer := step.Writer
	if writer == nil {
		writer = os.Stdout
	}
	text, err := projectCtx.Properties.YAML()
	if err != nil {
		return err
	}
	fmt.Fprintf(writer, "%s\n%s\n", util.Bold("Project properties:"), text)

	if scaffoldCtx.SkipConfirm {
		log.Debug("Confirmation is skipped.")
		return nil
	}

	isInteractive := step.IsInteractive
	if isInteractive == nil {
		isInteractive = isStdinTerminal
	}
	if !isInteractive() {
		return util.NewArgError("properties confirmation requires a terminal, use --yes to skip it")
	}

	confirmer := step.Confirmer
	if confirmer == nil {
		confirmer = NewPromptConfirmer()
	}
	confirmed, err := confirmer.Confirm("Use these properties")
	if err != nil {
		return fmt.Errorf("failed to get confirmation: %w", err)
	}
	if !confirmed {
		fmt.Fprintf(writer, "Aborting. Edit %s to make changes.\n", scaffoldCtx.PropertiesFile)
		return util.ErrCmdAbort
	}
	return nil
}
