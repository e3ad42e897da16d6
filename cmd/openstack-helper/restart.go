// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/names/v5"
)

// remoteRestartCommand implements the remote-restart command.
type remoteRestartCommand struct {
	cmd.CommandBase
	api UnitAPI

	RelationName      string
	RemoteApplication string
}

func newRemoteRestartCommand(api UnitAPI) cmd.Command {
	return &remoteRestartCommand{api: api}
}

// Info implements cmd.Command.
func (c *remoteRestartCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "remote-restart",
		Args:    "<relation-name>",
		Purpose: "ask the units on a relation to restart their services",
		Doc: `
remote-restart writes a new restart-trigger value to every relation
established under <relation-name> that has remote units.
`,
	}
}

// SetFlags implements cmd.Command.
func (c *remoteRestartCommand) SetFlags(f *gnuflag.FlagSet) {
	f.StringVar(&c.RemoteApplication, "remote-application", "", "only trigger relations to this application")
}

// Init implements cmd.Command.
func (c *remoteRestartCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("no relation name specified")
	}
	c.RelationName = args[0]
	if c.RemoteApplication != "" && !names.IsValidApplication(c.RemoteApplication) {
		return errors.NotValidf("application name %q", c.RemoteApplication)
	}
	return cmd.CheckEmpty(args[1:])
}

// Run implements cmd.Command.
func (c *remoteRestartCommand) Run(ctx *cmd.Context) error {
	restarter, err := c.api.Restarter()
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(restarter.RemoteRestart(c.RelationName, c.RemoteApplication))
}
