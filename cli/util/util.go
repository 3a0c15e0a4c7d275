package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/apex/log"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

var (
	// ErrCmdAbort is reported when user aborts the program.
	ErrCmdAbort = errors.New("aborted by user")

	// yamlExtensions are the accepted extensions of YAML files.
	yamlExtensions = []string{".yaml", ".yml"}

	bold = ansi.ColorFunc("default+b")
)

// Bold makes the input string bold.
func Bold(s string) string {
	return bold(s)
}

// ArgError represents command line arguments error.
type ArgError struct {
	msg string
}

// Error returns error message.
func (e ArgError) Error() string {
	return e.msg
}

// NewArgError creates and returns new argument error.
func NewArgError(text string) error {
	return &ArgError{text}
}

// VersionFunc returns the pinit version string: short form and commit flags.
type VersionFunc func(bool, bool) string

// GetFileContentBytes returns file content as a bytes slice.
func GetFileContentBytes(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// GetFileContent returns file content as a string.
func GetFileContent(path string) (string, error) {
	content, err := os.ReadFile(path)
	return string(content), err
}

// Find returns the index of the first occurrence of find in src or -1.
func Find[T comparable](src []T, find T) int {
	return slices.Index(src, find)
}

// InternalError builds an error for a pinit bug: the formatted message, the
// version and the call stack.
func InternalError(format string, f VersionFunc, err ...interface{}) error {
	return fmt.Errorf("whoops! It looks like something is wrong with this version of pinit.\n"+
		"Error: %s\nVersion: %s\nStacktrace:\n%s",
		fmt.Sprintf(format, err...), f(false, false), debug.Stack())
}

// ParseYAML parses the yaml file at path into a raw map.
func ParseYAML(path string) (map[string]interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read "%s" file: %s`, path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %s", err)
	}
	return raw, nil
}

// IsDir returns true if filePath is an existing directory.
func IsDir(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	return err == nil && fileInfo.IsDir()
}

// CreateDirectory creates dirName with parents. An existing directory is not
// an error, an existing non-directory is.
func CreateDirectory(dirName string, fileMode os.FileMode) error {
	stat, err := os.Stat(dirName)
	switch {
	case err == nil && stat.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("'%s' already exists and is not a directory", dirName)
	case !os.IsNotExist(err):
		return err
	}
	return os.MkdirAll(dirName, fileMode)
}

// GetYamlFileName looks for fileName with either .yaml or .yml extension.
// fileName may have one of them or none. The found file is returned. If
// nothing is found, os.ErrNotExist is returned if mustExist is set, the empty
// string otherwise.
func GetYamlFileName(fileName string, mustExist bool) (string, error) {
	ext := filepath.Ext(fileName)
	if ext != "" && ext != "." && !slices.Contains(yamlExtensions, ext) {
		return "", fmt.Errorf("provided file '%s' has no .yaml/.yml extension", fileName)
	}
	baseName := strings.TrimSuffix(fileName, ext)

	found := []string{}
	for _, candidateExt := range yamlExtensions {
		candidate := baseName + candidateExt
		if _, err := os.Stat(candidate); err == nil {
			found = append(found, candidate)
		} else if !os.IsNotExist(err) {
			return "", err
		}
	}

	switch {
	case len(found) > 1:
		return "", fmt.Errorf("more than one YAML files are found:\n%s\nAmbiguous selection",
			strings.Join(found, ", "))
	case len(found) == 1:
		return found[0], nil
	case mustExist:
		return "", os.ErrNotExist
	}
	return "", nil
}

// HandleCmdErr handles an error returned by command implementation.
// Usage is printed for ArgError, user abort exits silently.
func HandleCmdErr(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}

	var argError *ArgError
	switch {
	case errors.As(err, &argError):
		log.Error(argError.Error())
		cmd.Usage()
		os.Exit(1)
	case errors.Is(err, ErrCmdAbort):
		os.Exit(1)
	}
	log.Fatalf(err.Error())
}
