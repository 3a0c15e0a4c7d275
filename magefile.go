//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	goPackageName = "github.com/pinit-dev/pinit/cli"

	asmflags = "all=-trimpath=${PWD}"
	gcflags  = "all=-trimpath=${PWD}"

	packagePath = "./cli"
)

var (
	ldflags = []string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
		"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
	}
	goExecutableName    = "go"
	pinitExecutableName = "pinit"

	Aliases = map[string]any{
		"build": Build.Release,
		"unit":  Unit.Default,
	}
)

func init() {
	var err error

	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExecutableName = specifiedGoExe
	}

	if specifiedPinitExe := os.Getenv("PINITEXE"); specifiedPinitExe != "" {
		pinitExecutableName = specifiedPinitExe
	} else {
		if pinitExecutableName, err = filepath.Abs(pinitExecutableName); err != nil {
			panic(err)
		}
	}
	os.Setenv("GO111MODULE", "on")
}

type optsUpdater func([]string) ([]string, error)

// appendFlags appends flags passed in args.
func appendFlags(flags ...string) optsUpdater {
	return func(args []string) ([]string, error) {
		return append(args, flags...), nil
	}
}

// appendLdFlags appends linker flags.
func appendLdFlags(flags ...string) optsUpdater {
	return func(args []string) ([]string, error) {
		buildLdflags := make([]string, len(ldflags))
		copy(buildLdflags, ldflags)
		buildLdflags = append(buildLdflags, flags...)
		return append(append(args, "-ldflags"), strings.Join(buildLdflags, " ")), nil
	}
}

// Building pinit executable.
func buildPinit(argUpdaters ...optsUpdater) error {
	args := []string{"build", "-o", pinitExecutableName}
	var err error
	for _, updateArguments := range argUpdaters {
		if args, err = updateArguments(args); err != nil {
			return err
		}
	}
	args = append(args,
		"-asmflags", asmflags,
		"-gcflags", gcflags,
		packagePath)
	err = sh.RunWith(getBuildEnvironment(), goExecutableName, args...)
	if err != nil {
		return fmt.Errorf("Failed to build pinit executable: %s", err)
	}

	return nil
}

type Build mg.Namespace

// Building release pinit executable without debug info.
func (Build) Release() error {
	fmt.Println("Building release pinit...")

	return buildPinit(appendLdFlags("-s", "-w"))
}

// Building debug pinit executable.
func (Build) Debug() error {
	fmt.Println("Building debug pinit...")

	return buildPinit(appendLdFlags())
}

// Building pinit executable with coverage.
func (Build) Coverage() error {
	fmt.Println("Building release pinit with coverage...")

	err := buildPinit(appendFlags("-cover"), appendLdFlags("-s", "-w"))
	if err != nil {
		return err
	}
	fmt.Println(`Set coverage data destination directory (must exist) and run pinit:
	GOCOVERDIR=./<coverage_dest_dir> pinit <opts>`)
	return nil
}

type Lint mg.Namespace

// Run golang linters.
func (Lint) Golang() error {
	fmt.Println("Running golangci-lint...")

	return sh.RunV("golangci-lint", "run")
}

type Unit mg.Namespace

func runUnitTests(flags []string) error {
	args := []string{"test"}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	args = append(args, "./...")
	args = append(args, flags...)

	return sh.RunV(goExecutableName, args...)
}

// Run unit tests.
func (Unit) Default() error {
	fmt.Println("Running unit tests...")

	return runUnitTests([]string{})
}

// Run unit tests with the race detector.
func (Unit) Race() error {
	fmt.Println("Running unit tests with the race detector...")

	return runUnitTests([]string{"-race"})
}

// Run unit tests with code coverage.
func (Unit) Coverage() error {
	fmt.Println("Running unit tests with code coverage...")

	return runUnitTests([]string{"-coverprofile", "coverage.out"})
}

// Run codespell checker.
func Codespell() error {
	fmt.Println("Running codespell...")

	return sh.RunV("codespell")
}

// Run all tests.
func Test() {
	mg.SerialDeps(Unit.Default)
}

// Cleanup directory.
func Clean() {
	fmt.Println("Cleaning directory...")

	os.Remove(pinitExecutableName)
	os.Remove("coverage.out")
}

// getBuildEnvironment return map with build environment variables.
func getBuildEnvironment() map[string]string {
	var err error

	var currentDir string
	var gitTag string
	var gitCommit string

	if currentDir, err = os.Getwd(); err != nil {
		log.Warnf("Failed to get current directory: %s", err)
	}

	if _, err := exec.LookPath("git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	return map[string]string{
		"PACKAGE":       goPackageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
		"PWD":           currentDir,
		"CGO_ENABLED":   "0",
	}
}
