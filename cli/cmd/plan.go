package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/pinit-dev/pinit/cli/cmdcontext"
	"github.com/pinit-dev/pinit/cli/scaffold"
	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
	"github.com/pinit-dev/pinit/cli/tree"
)

var (
	planPropertiesFile string
	planVarsFromCli    *[]string
	planStrictVars     bool
	planShowDiff       bool
	planPretty         bool
)

// NewPlanCmd creates a new plan command.
func NewPlanCmd() *cobra.Command {
	var planCmd = &cobra.Command{
		Use:   "plan [DIR] [flags]",
		Short: "Show what run would do with the project template",
		Run:   RunModuleFunc(internalPlanModule),
		Args:  cobra.MaximumNArgs(1),
		Example: `
# Show the actions and the rendered content.

    $ pinit plan --diff --var name=my-project`,
	}

	planCmd.Flags().StringVarP(&planPropertiesFile, "properties", "p", "",
		"Properties file path")
	planVarsFromCli = planCmd.Flags().StringArray("var", []string{},
		"Property definition. Usage: --var key.path=value")
	planCmd.Flags().BoolVar(&planStrictVars, "strict", false,
		"Fail on references to undefined properties")
	planCmd.Flags().BoolVar(&planShowDiff, "diff", false,
		"Show the difference between templates and rendered files")
	planCmd.Flags().BoolVar(&planPretty, "pretty", false, "Print the table with borders")

	return planCmd
}

// internalPlanModule is a default plan module.
func internalPlanModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	scaffoldCtx, err := newScaffoldCtx(cmdCtx, projectDirFromArgs(args),
		scaffold_ctx.ScaffoldCtx{
			PropertiesFile: planPropertiesFile,
			VarsFromCli:    *planVarsFromCli,
			Strict:         planStrictVars,
		})
	if err != nil {
		return err
	}

	items, err := scaffold.Plan(context.Background(), scaffoldCtx, planShowDiff)
	if err != nil {
		return err
	}
	writePlan(os.Stdout, items, planPretty)
	return nil
}

// actionSprint colors the action name.
func actionSprint(action tree.Action) string {
	switch action {
	case tree.Render:
		return color.GreenString(action.String())
	case tree.Move:
		return color.YellowString(action.String())
	default:
		return color.New(color.Faint).Sprint(action.String())
	}
}

// diffSprint colors added and removed lines of the unified diff.
func diffSprint(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = color.New(color.Bold).Sprint(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = color.GreenString(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = color.RedString(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = color.CyanString(line)
		}
	}
	return strings.Join(lines, "")
}

// writePlan writes the plan as a table followed by the diffs.
func writePlan(w io.Writer, items []scaffold.PlanItem, pretty bool) {
	ts := table.NewWriter()
	ts.SetOutputMirror(w)
	ts.AppendHeader(table.Row{"SOURCE", "ACTION", "DESTINATION"})
	for _, item := range items {
		ts.AppendRow(table.Row{item.Entry.Path, actionSprint(item.Action), item.Destination})
	}

	if pretty {
		ts.SetStyle(table.StyleRounded)
	} else {
		ts.Style().Options.DrawBorder = false
		ts.Style().Options.SeparateColumns = false
		ts.Style().Options.SeparateHeader = false
	}
	ts.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	ts.Render()

	for _, item := range items {
		if item.Diff == "" {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, diffSprint(item.Diff))
	}
}
