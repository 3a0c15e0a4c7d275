package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pinit-dev/pinit/cli/cmdcontext"
	"github.com/pinit-dev/pinit/cli/configure"
	"github.com/pinit-dev/pinit/cli/scaffold"
	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
)

var (
	propertiesFile string
	varsFromCli    *[]string
	skipConfirm    bool
	editProperties bool
	dstPath        string
	strictVars     bool
)

// NewRunCmd creates a project from the project template.
func NewRunCmd() *cobra.Command {
	var runCmd = &cobra.Command{
		Use:   "run [DIR] [flags]",
		Short: "Turn the project template into a project",
		Long: `Turn the project template into a project.

File and directory names are rendered with the project properties, files with
the template suffix are rendered and saved without it. The template is
transformed in place unless --dst is set.`,
		Run:  RunModuleFunc(internalRunModule),
		Args: cobra.MaximumNArgs(1),
		Example: `
# Render the template in the current directory.

    $ pinit run

# Render a copy of the template without confirmation.

    $ pinit run ./template --dst ./my-project -y --var name=my-project

# Edit the properties before rendering.

    $ pinit run -e`,
	}

	runCmd.Flags().StringVarP(&propertiesFile, "properties", "p", "",
		"Properties file path")
	varsFromCli = runCmd.Flags().StringArray("var", []string{},
		"Property definition. Usage: --var key.path=value")
	runCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false,
		"Do not ask for the properties confirmation")
	runCmd.Flags().BoolVarP(&editProperties, "edit", "e", false,
		"Open the properties file in $VISUAL or $EDITOR first")
	runCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where the project will be created")
	runCmd.Flags().BoolVar(&strictVars, "strict", false,
		"Fail on references to undefined properties")

	return runCmd
}

// projectDirFromArgs returns the project template directory.
func projectDirFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// newScaffoldCtx configures pinit for the project directory and fills
// scaffold context prepared from the command line options.
func newScaffoldCtx(cmdCtx *cmdcontext.CmdCtx, projectDir string,
	scaffoldCtx scaffold_ctx.ScaffoldCtx,
) (*scaffold_ctx.ScaffoldCtx, error) {
	cliOpts, err := configure.Cli(cmdCtx, projectDir)
	if err != nil {
		return nil, err
	}

	scaffoldCtx.Verbose = cmdCtx.Cli.Verbose
	if err := scaffold.FillCtx(cliOpts, &scaffoldCtx, projectDir); err != nil {
		return nil, err
	}
	return &scaffoldCtx, nil
}

// internalRunModule is a default run module.
func internalRunModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	scaffoldCtx, err := newScaffoldCtx(cmdCtx, projectDirFromArgs(args),
		scaffold_ctx.ScaffoldCtx{
			PropertiesFile: propertiesFile,
			VarsFromCli:    *varsFromCli,
			SkipConfirm:    skipConfirm,
			EditProperties: editProperties,
			DestinationDir: dstPath,
			Strict:         strictVars,
		})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return scaffold.Run(ctx, scaffoldCtx, nil)
}
