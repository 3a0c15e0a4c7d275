// Package version reports the pinit build version.
package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "pinit"
)

// Get the value of this variables at build time.
// See magefile for more details.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// normalize returns the dotted numeric form of a git tag: "v1.2" becomes
// "1.2.0". Tags which are not versions are returned as is.
func normalize(tag string) string {
	if tag == "" {
		return unknownVersion
	}
	parsed, err := goVersion.NewVersion(tag)
	if err != nil {
		return tag
	}

	segments := make([]string, 0, len(parsed.Segments()))
	for _, num := range parsed.Segments() {
		segments = append(segments, strconv.Itoa(num))
	}
	version := strings.Join(segments, ".")
	if prerelease := parsed.Prerelease(); prerelease != "" {
		version += "-" + prerelease
	}
	return version
}

// GetVersion return string with pinit version info.
func GetVersion(showShort bool, needCommit bool) string {
	version := normalize(gitTag)
	if gitTag != "" && versionLabel != "" {
		version = fmt.Sprintf("%s/%s", version, versionLabel)
	}

	if needCommit {
		return fmt.Sprintf("%s.%s", version, gitCommit)
	}
	if showShort {
		return version
	}

	return fmt.Sprintf(
		"%s version %s, %s/%s. commit: %s",
		cliVersionTitle, version, runtime.GOOS, runtime.GOARCH, gitCommit,
	)
}
