// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package openstack holds helpers shared by the charms that deploy
// OpenStack services: publishing database access details over IPv6,
// asking related units to restart, and working out which OpenStack
// release is installed.
package openstack

import (
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("juju.charmhelpers.openstack")

// ConfigGetter reads charm config values.
type ConfigGetter interface {
	// Config returns the value for key; the boolean is false when the
	// key has no value.
	Config(key string) (string, bool, error)
}

// HookContext is the portion of the hook tools used in this package.
type HookContext interface {
	ConfigGetter

	// RelationIds returns the ids of the relations established under
	// the given name.
	RelationIds(name string) ([]string, error)

	// RelatedUnits returns the remote units of a relation.
	RelatedUnits(relationId string) ([]string, error)

	// RelationSet writes settings for the local unit on a relation.
	RelationSet(relationId string, settings map[string]string) error
}
