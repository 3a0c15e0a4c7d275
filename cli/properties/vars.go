package properties

import (
	"fmt"
	"strings"

	"github.com/apex/log"
)

const formatError = `wrong variable definition format: %s
Usage: --var "key.path=value"`

// ApplyVars returns a copy of props with the command line variable definitions applied.
// Each definition has "key.path=value" form.
func ApplyVars(props PropertyMap, varDefinitions []string) (PropertyMap, error) {
	var err error
	for _, varDefinition := range varDefinitions {
		varDefinition = strings.TrimSpace(varDefinition)
		varName, value, found := strings.Cut(varDefinition, "=")
		if !found || varName == "" || value == "" {
			return nil, fmt.Errorf(formatError, varDefinition)
		}
		log.Debugf("Setting property from CLI: %s = %s", varName, value)
		if props, err = props.With(varName, value); err != nil {
			return nil, err
		}
	}
	if props == nil {
		props = PropertyMap{}
	}
	return props, nil
}
