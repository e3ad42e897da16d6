// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/juju/charmhelpers/openstack"
)

// osReleaseCommand implements the os-release command.
type osReleaseCommand struct {
	cmd.CommandBase
	api UnitAPI
	out cmd.Output

	Package string
	Base    string
}

func newOSReleaseCommand(api UnitAPI) cmd.Command {
	return &osReleaseCommand{api: api}
}

// Info implements cmd.Command.
func (c *osReleaseCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "os-release",
		Args:    "<package>",
		Purpose: "print the codename of the installed OpenStack release",
		Doc: `
The release is taken from the openstack-origin config, then the installed
version of <package>, then the openstack-origin-git config. When none of
them tells, the --base release is printed; an empty --base prints nothing.
Each invocation resolves the release afresh.
`,
	}
}

// SetFlags implements cmd.Command.
func (c *osReleaseCommand) SetFlags(f *gnuflag.FlagSet) {
	c.out.AddFlags(f, "smart", map[string]cmd.Formatter{
		"smart": cmd.FormatSmart,
		"yaml":  cmd.FormatYaml,
		"json":  cmd.FormatJson,
	})
	f.StringVar(&c.Base, "base", openstack.DefaultBaseRelease, "release reported when none can be detected")
}

// Init implements cmd.Command.
func (c *osReleaseCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("no package specified")
	}
	c.Package = args[0]
	return cmd.CheckEmpty(args[1:])
}

// Run implements cmd.Command.
func (c *osReleaseCommand) Run(ctx *cmd.Context) error {
	resolver, err := c.api.ReleaseResolver(c.Base)
	if err != nil {
		return errors.Trace(err)
	}
	codename, err := resolver.OSRelease(c.Package, false)
	if err != nil {
		return errors.Trace(err)
	}
	if codename == "" {
		logger.Debugf("no release detected for %q", c.Package)
		return nil
	}
	return c.out.Write(ctx, codename)
}
