package cmd

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/pinit-dev/pinit/cli/cmdcontext"
	"github.com/pinit-dev/pinit/cli/util"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	rootCmd *cobra.Command
)

// moduleFunc is a command implementation.
type moduleFunc func(cmdCtx *cmdcontext.CmdCtx, args []string) error

// RunModuleFunc returns a cobra Run function for the command implementation.
func RunModuleFunc(internalModule moduleFunc) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmdCtx.CommandName = cmd.Name()
		err := internalModule(&cmdCtx, args)
		util.HandleCmdErr(cmd, err)
	}
}

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pinit",
		Short: "Project scaffolding tool",
		Long: "Utility for turning a project template directory into a project: " +
			"file names and contents are rendered with the project properties",
		Example: `$ pinit run
  $ pinit run ./template --dst ./my-project --var name=my-project
  $ pinit plan --diff
  $ pinit completion bash`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmdCtx.Cli.Verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Show debug messages and post command output")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewRunCmd(),
		NewPlanCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if rootCmd == nil {
		InitRoot()
	}
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// InitRoot initializes the root command and its global flags.
func InitRoot() {
	rootCmd = NewCmdRoot()
}
