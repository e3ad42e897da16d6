// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"fmt"
	"os"

	"github.com/juju/cmd/v3"
	"github.com/juju/loggo"

	"github.com/juju/charmhelpers/hookenv"
)

func main() {
	os.Exit(Main(os.Args))
}

// Main runs openstack-helper with the given arguments and returns the
// exit code.
func Main(args []string) int {
	ctx, err := cmd.DefaultContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	env := hookenv.EnvironmentFromOS()
	hookCtx := hookenv.NewContext(hookenv.NewExecRunner(env))
	if env.Validate() == nil {
		// Inside a hook, log records also go to the unit log.
		writer := hookenv.NewLogWriter(hookCtx, env, ctx.Stderr)
		if err := loggo.RegisterWriter("juju-log", writer); err != nil {
			fmt.Fprintf(ctx.Stderr, "cannot forward logs to juju-log: %v\n", err)
		}
	}
	return cmd.Main(NewSuperCommand(newHookUnitAPI(env, hookCtx)), ctx, args[1:])
}
