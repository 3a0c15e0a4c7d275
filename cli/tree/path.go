package tree

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/pinit-dev/pinit/cli/templates"
)

// PathRenderer renders file paths: names may contain "{{ }}" placeholders and
// percent-encoded characters.
type PathRenderer struct {
	Engine templates.TemplateEngine
	// Data is a properties mapping used for rendering.
	Data any
}

// RenderPath percent-decodes rawPath and renders it as a template.
// A path with a malformed escape sequence is rendered as is.
func (renderer PathRenderer) RenderPath(rawPath string) (string, error) {
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		log.Debugf("Path %q is not percent-decoded: %s", rawPath, err)
		decoded = rawPath
	}
	return renderer.Engine.RenderText(decoded, renderer.Data)
}

// destinationPath converts a rendered path to a clean relative path and checks
// it stays inside the root.
func destinationPath(rendered string) (string, error) {
	dst := filepath.Clean(filepath.FromSlash(rendered))
	if filepath.IsAbs(dst) {
		return "", fmt.Errorf("rendered path %q is absolute", rendered)
	}
	if dst == "." || dst == "" {
		return "", fmt.Errorf("rendered path %q is empty", rendered)
	}
	if dst == ".." || strings.HasPrefix(dst, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("rendered path %q is outside of the project directory", rendered)
	}
	return dst, nil
}
