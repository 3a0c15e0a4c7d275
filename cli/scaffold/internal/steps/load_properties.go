package steps

import (
	"context"
	"errors"
	"os"

	"github.com/apex/log"

	"github.com/pinit-dev/pinit/cli/properties"
	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
)

// LoadProperties represents properties load step.
type LoadProperties struct{}

// Run loads the properties file and applies the command line definitions.
// A missing properties file is an error only if it is set explicitly.
func (LoadProperties) Run(_ context.Context, scaffoldCtx *scaffold_ctx.ScaffoldCtx,
	projectCtx *ProjectCtx,
) error {
	props, err := properties.Load(scaffoldCtx.PropertiesFile)
	if err != nil {
		if scaffoldCtx.PropertiesFileSet || !errors.Is(err, os.ErrNotExist) {
			return err
		}
		log.Warnf("Properties file %s is not found.", scaffoldCtx.PropertiesFile)
		props = properties.PropertyMap{}
	}

	if projectCtx.Properties, err = properties.ApplyVars(props,
		scaffoldCtx.VarsFromCli); err != nil {
		return err
	}
	return nil
}
