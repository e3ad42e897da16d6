// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package openstack

import (
	"github.com/juju/errors"
	"github.com/juju/names/v5"
	"github.com/juju/utils/v3"
)

const restartTriggerKey = "restart-trigger"

// TokenGenerator returns a new unique restart token.
type TokenGenerator func() (string, error)

// NewRestartToken returns a random UUID.
func NewRestartToken() (string, error) {
	uuid, err := utils.NewUUID()
	if err != nil {
		return "", errors.Trace(err)
	}
	return uuid.String(), nil
}

// Restarter asks related units to restart their services.
type Restarter struct {
	ctx      HookContext
	newToken TokenGenerator
}

// NewRestarter returns a Restarter writing through ctx. NewRestartToken
// is used when newToken is nil.
func NewRestarter(ctx HookContext, newToken TokenGenerator) *Restarter {
	if newToken == nil {
		newToken = NewRestartToken
	}
	return &Restarter{ctx: ctx, newToken: newToken}
}

// RemoteRestart writes a fresh restart-trigger token to every relation
// established under relationName that has remote units. When
// remoteApplication is not empty only relations to that application
// are triggered, which matters for subordinates related to more than one
// principal.
func (r *Restarter) RemoteRestart(relationName, remoteApplication string) error {
	ids, err := r.ctx.RelationIds(relationName)
	if err != nil {
		return errors.Trace(err)
	}
	for _, id := range ids {
		units, err := r.ctx.RelatedUnits(id)
		if err != nil {
			return errors.Trace(err)
		}
		if !hasApplicationUnit(units, remoteApplication) {
			continue
		}
		token, err := r.newToken()
		if err != nil {
			return errors.Annotate(err, "generating restart token")
		}
		logger.Infof("triggering restart of units on %s", id)
		if err := r.ctx.RelationSet(id, map[string]string{restartTriggerKey: token}); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// hasApplicationUnit reports whether units holds a valid unit of
// application, or any valid unit when application is empty.
func hasApplicationUnit(units []string, application string) bool {
	for _, unit := range units {
		app, err := names.UnitApplication(unit)
		if err != nil {
			logger.Warningf("ignoring related unit: %v", err)
			continue
		}
		if application == "" || app == application {
			return true
		}
	}
	return false
}
