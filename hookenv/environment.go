// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package hookenv is the charm side of the Juju hook tools. It knows how
// to read the environment a hook runs in and how to call back into the
// unit agent through config-get, relation-ids, related-units,
// relation-set and juju-log.
package hookenv

import (
	"os"

	"github.com/juju/errors"
	"github.com/juju/names/v5"
)

// Environment holds the hook environment variables set by the unit agent
// before a hook is executed.
type Environment struct {
	ContextId      string
	AgentSocket    string
	CharmDir       string
	UnitName       string
	RemoteUnitName string
	RelationName   string
	RelationId     string
}

// EnvironmentFromOS reads the hook environment of the current process.
func EnvironmentFromOS() Environment {
	return environmentFrom(os.Getenv)
}

func environmentFrom(getenv func(string) string) Environment {
	return Environment{
		ContextId:      getenv("JUJU_CONTEXT_ID"),
		AgentSocket:    getenv("JUJU_AGENT_SOCKET"),
		CharmDir:       getenv("CHARM_DIR"),
		UnitName:       getenv("JUJU_UNIT_NAME"),
		RemoteUnitName: getenv("JUJU_REMOTE_UNIT"),
		RelationName:   getenv("JUJU_RELATION"),
		RelationId:     getenv("JUJU_RELATION_ID"),
	}
}

// Validate returns an error if the environment does not describe a
// running hook.
func (e Environment) Validate() error {
	if e.ContextId == "" {
		return errors.NotValidf("hook environment without JUJU_CONTEXT_ID")
	}
	if e.UnitName == "" {
		return errors.NotValidf("hook environment without JUJU_UNIT_NAME")
	}
	if !names.IsValidUnit(e.UnitName) {
		return errors.NotValidf("unit name %q", e.UnitName)
	}
	return nil
}

// Vars returns an os.Environ-style list of the variables that are set,
// suitable for running a hook tool that calls back into the agent.
func (e Environment) Vars() []string {
	var vars []string
	add := func(name, value string) {
		if value != "" {
			vars = append(vars, name+"="+value)
		}
	}
	add("JUJU_CONTEXT_ID", e.ContextId)
	add("JUJU_AGENT_SOCKET", e.AgentSocket)
	add("CHARM_DIR", e.CharmDir)
	add("JUJU_UNIT_NAME", e.UnitName)
	add("JUJU_REMOTE_UNIT", e.RemoteUnitName)
	add("JUJU_RELATION", e.RelationName)
	add("JUJU_RELATION_ID", e.RelationId)
	return vars
}
