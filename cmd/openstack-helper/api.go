// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"github.com/juju/collections/set"
	"github.com/juju/errors"

	"github.com/juju/charmhelpers/hookenv"
	"github.com/juju/charmhelpers/network"
	"github.com/juju/charmhelpers/openstack"
)

// DBPublisher publishes database access requests.
type DBPublisher interface {
	SyncDBWithMultiIPv6Addresses(database, user, relationPrefix string) error
}

// RemoteRestarter asks related units to restart.
type RemoteRestarter interface {
	RemoteRestart(relationName, remoteApplication string) error
}

// ReleaseResolver reports the installed OpenStack release.
type ReleaseResolver interface {
	OSRelease(pkg string, resetCache bool) (string, error)
}

// UnitAPI builds the helpers the commands drive.
type UnitAPI interface {
	Publisher(iface string, exclude []string) (DBPublisher, error)
	Restarter() (RemoteRestarter, error)
	ReleaseResolver(base string) (ReleaseResolver, error)
}

// hookUnitAPI is the UnitAPI used inside a running hook.
type hookUnitAPI struct {
	env hookenv.Environment
	ctx *hookenv.Context
}

func newHookUnitAPI(env hookenv.Environment, ctx *hookenv.Context) *hookUnitAPI {
	return &hookUnitAPI{env: env, ctx: ctx}
}

// Publisher implements UnitAPI.
func (a *hookUnitAPI) Publisher(iface string, exclude []string) (DBPublisher, error) {
	if err := a.env.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	source := openstack.NetworkAddressSource{
		Source:    network.DefaultConfigSource(),
		Interface: iface,
		Exclude:   set.NewStrings(exclude...),
	}
	return openstack.NewPublisher(a.ctx, source), nil
}

// Restarter implements UnitAPI.
func (a *hookUnitAPI) Restarter() (RemoteRestarter, error) {
	if err := a.env.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return openstack.NewRestarter(a.ctx, nil), nil
}

// ReleaseResolver implements UnitAPI.
func (a *hookUnitAPI) ReleaseResolver(base string) (ReleaseResolver, error) {
	if err := a.env.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	resolver, err := openstack.NewReleaseResolver(openstack.ReleaseResolverConfig{
		Config: a.ctx,
		Lookup: openstack.NewLookup(),
		Base:   base,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return resolver, nil
}
