// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
)

const syncDBDoc = `
sync-db-ipv6 asks the database on every shared-db relation to grant
<username> access to <database> from every global IPv6 address of this
unit, followed by any IPv6 addresses listed in the vip config option.

With --relation-prefix the database, username and hostname keys are
prefixed with the given value and an underscore, so that one relation
can carry requests for several databases.

Examples:
    openstack-helper sync-db-ipv6 nova nova
    openstack-helper sync-db-ipv6 --relation-prefix nova_api nova_api nova
`

// syncDBCommand implements the sync-db-ipv6 command.
type syncDBCommand struct {
	cmd.CommandBase
	api UnitAPI

	Database       string
	Username       string
	RelationPrefix string
	Interface      string
	exclude        string
}

func newSyncDBCommand(api UnitAPI) cmd.Command {
	return &syncDBCommand{api: api}
}

// Info implements cmd.Command.
func (c *syncDBCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "sync-db-ipv6",
		Args:    "<database> <username>",
		Purpose: "request database access for every IPv6 address of the unit",
		Doc:     syncDBDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *syncDBCommand) SetFlags(f *gnuflag.FlagSet) {
	f.StringVar(&c.RelationPrefix, "relation-prefix", "", "prefix for the relation keys")
	f.StringVar(&c.Interface, "interface", "", "only publish addresses of this network interface")
	f.StringVar(&c.exclude, "exclude", "", "comma separated addresses or subnets not to publish")
}

// Init implements cmd.Command.
func (c *syncDBCommand) Init(args []string) error {
	if len(args) < 2 {
		return errors.New("database and username must be specified")
	}
	c.Database, c.Username = args[0], args[1]
	return cmd.CheckEmpty(args[2:])
}

// Run implements cmd.Command.
func (c *syncDBCommand) Run(ctx *cmd.Context) error {
	var exclude []string
	for _, addr := range strings.Split(c.exclude, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			exclude = append(exclude, addr)
		}
	}
	publisher, err := c.api.Publisher(c.Interface, exclude)
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(publisher.SyncDBWithMultiIPv6Addresses(c.Database, c.Username, c.RelationPrefix))
}
