// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package openstack

import (
	"encoding/json"
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"

	"github.com/juju/charmhelpers/network"
)

const (
	sharedDBRelation = "shared-db"
	vipKey           = "vip"
)

// AddressSource returns the IPv6 addresses of the unit in CIDR form.
type AddressSource interface {
	IPv6Addresses() ([]string, error)
}

// NetworkAddressSource is an AddressSource reading the machine's global
// IPv6 addresses.
type NetworkAddressSource struct {
	Source    network.ConfigSource
	Interface string
	Exclude   set.Strings
}

// IPv6Addresses implements AddressSource.
func (s NetworkAddressSource) IPv6Addresses() ([]string, error) {
	addrs, err := network.GlobalIPv6Addresses(s.Source, s.Interface, s.Exclude)
	return addrs, errors.Trace(err)
}

// Publisher publishes database access details on the shared-db relation.
type Publisher struct {
	ctx   HookContext
	addrs AddressSource
}

// NewPublisher returns a Publisher writing through ctx.
func NewPublisher(ctx HookContext, addrs AddressSource) *Publisher {
	return &Publisher{ctx: ctx, addrs: addrs}
}

// SyncDBWithMultiIPv6Addresses asks for access to database for user from
// every IPv6 address of the unit, followed by any IPv6 VIPs in the vip
// config. The request is written to every shared-db relation; when
// relationPrefix is not empty each key is prefixed with it and an
// underscore.
func (p *Publisher) SyncDBWithMultiIPv6Addresses(database, user, relationPrefix string) error {
	hosts, err := p.hosts()
	if err != nil {
		return errors.Trace(err)
	}
	encoded, err := json.Marshal(hosts)
	if err != nil {
		return errors.Trace(err)
	}

	key := func(name string) string {
		if relationPrefix == "" {
			return name
		}
		return relationPrefix + "_" + name
	}
	settings := map[string]string{
		key("database"): database,
		key("username"): user,
		key("hostname"): string(encoded),
	}

	ids, err := p.ctx.RelationIds(sharedDBRelation)
	if err != nil {
		return errors.Trace(err)
	}
	for _, id := range ids {
		logger.Debugf("requesting database %q for %q on %s from %s", database, user, id, encoded)
		if err := p.ctx.RelationSet(id, settings); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

func (p *Publisher) hosts() ([]string, error) {
	hosts, err := p.addrs.IPv6Addresses()
	if err != nil {
		return nil, errors.Annotate(err, "discovering IPv6 addresses")
	}
	hosts = append([]string(nil), hosts...)

	vips, ok, err := p.ctx.Config(vipKey)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !ok {
		return hosts, nil
	}
	for _, vip := range strings.Fields(vips) {
		if !network.IsIPv6(vip) {
			logger.Debugf("ignoring non IPv6 vip %q", vip)
			continue
		}
		hosts = append(hosts, vip)
	}
	return hosts, nil
}
