// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"os"
	"runtime"

	"github.com/juju/cmd/v3"
	"github.com/juju/loggo"
)

const (
	// loggingConfigEnvKey holds a loggo configuration string applied to
	// every run, e.g. "<root>=DEBUG".
	loggingConfigEnvKey = "OPENSTACK_HELPER_LOGGING_CONFIG"

	helperDoc = `
openstack-helper runs inside a charm hook and performs the unit side of
common OpenStack charm chores through the Juju hook tools.
`
)

var logger = loggo.GetLogger("juju.charmhelpers.cmd")

// version is set at build time.
var version = "0.1.0"

// NewSuperCommand returns the openstack-helper command with every
// subcommand registered against api.
func NewSuperCommand(api UnitAPI) *cmd.SuperCommand {
	helper := cmd.NewSuperCommand(cmd.SuperCommandParams{
		Name:    "openstack-helper",
		Purpose: "OpenStack charm hook helpers",
		Doc:     helperDoc,
		Log: &cmd.Log{
			DefaultConfig: os.Getenv(loggingConfigEnvKey),
		},
		Version:   version,
		NotifyRun: runNotifier,
	})
	helper.Register(newSyncDBCommand(api))
	helper.Register(newRemoteRestartCommand(api))
	helper.Register(newOSReleaseCommand(api))
	return helper
}

func runNotifier(name string) {
	logger.Debugf("running %s [%s %s %s]", name, version, runtime.Compiler, runtime.Version())
}
