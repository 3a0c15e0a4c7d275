package util

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond
)

// startSpinner shows a spinner with the prefix until the returned function
// is called.
func startSpinner(prefix string) func() {
	s := spinner.New(spinnerPicture, spinnerUpdateTime)
	s.Prefix = prefix + " "
	s.Start()
	return s.Stop
}

// RunCommand runs cmd in workingDir. If showOutput is set, the command output
// is shown as is. Otherwise the output is kept and printed only if the command
// fails, and a spinner is shown on a terminal while the command is running.
func RunCommand(cmd *exec.Cmd, workingDir string, showOutput bool) error {
	cmd.Dir = workingDir

	var output bytes.Buffer
	stopSpinner := func() {}
	if showOutput {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &output
		cmd.Stderr = &output
		if isatty.IsTerminal(os.Stdout.Fd()) {
			stopSpinner = startSpinner(cmd.String())
		}
	}

	err := cmd.Run()
	stopSpinner()
	if err != nil {
		os.Stdout.Write(output.Bytes())
		return fmt.Errorf("failed to run \n%s\n\n%w", cmd.String(), err)
	}
	return nil
}

// RunShellCommand runs the command line with "sh -c" in workingDir.
func RunShellCommand(command, workingDir string, showOutput bool) error {
	return RunCommand(exec.Command("sh", "-c", command), workingDir, showOutput)
}
