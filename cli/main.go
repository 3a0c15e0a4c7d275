package main

import (
	"github.com/apex/log"

	"github.com/pinit-dev/pinit/cli/cmd"
	"github.com/pinit-dev/pinit/cli/util"
	"github.com/pinit-dev/pinit/cli/version"
)

func main() {
	// A panic is reported as an internal error with the build version and the stack.
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("%s", util.InternalError("Unhandled internal error: %s",
				version.GetVersion, r))
		}
	}()

	cmd.Execute()
}
