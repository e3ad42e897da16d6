// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hookenv

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo"
)

// Context calls the hook tools on behalf of a charm.
type Context struct {
	runner Runner
}

// NewContext returns a Context that runs hook tools with the given runner.
func NewContext(runner Runner) *Context {
	return &Context{runner: runner}
}

// runJSON runs the tool asking for JSON output and decodes the result.
func (c *Context) runJSON(result interface{}, tool string, args ...string) error {
	out, err := c.runner.Run(tool, append([]string{"--format=json"}, args...)...)
	if err != nil {
		return errors.Trace(err)
	}
	out = []byte(strings.TrimSpace(string(out)))
	if len(out) == 0 {
		return nil
	}
	if err := json.Unmarshal(out, result); err != nil {
		return errors.Annotatef(err, "decoding %s output", tool)
	}
	return nil
}

// Config returns the charm config value for key. The boolean result is
// false when the key has no value.
func (c *Context) Config(key string) (string, bool, error) {
	var value interface{}
	if err := c.runJSON(&value, "config-get", key); err != nil {
		return "", false, errors.Annotatef(err, "reading config %q", key)
	}
	switch v := value.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	default:
		return fmt.Sprint(v), true, nil
	}
}

// RelationIds returns the ids of every relation established under the
// given relation name.
func (c *Context) RelationIds(name string) ([]string, error) {
	var ids []string
	if err := c.runJSON(&ids, "relation-ids", name); err != nil {
		return nil, errors.Annotatef(err, "listing %q relations", name)
	}
	return ids, nil
}

// RelatedUnits returns the remote units of the given relation. An empty
// relationId means the relation of the running hook.
func (c *Context) RelatedUnits(relationId string) ([]string, error) {
	var args []string
	if relationId != "" {
		args = append(args, "-r", relationId)
	}
	var units []string
	if err := c.runJSON(&units, "related-units", args...); err != nil {
		return nil, errors.Annotatef(err, "listing units of relation %q", relationId)
	}
	return units, nil
}

// RelationSet writes settings for the local unit on the given relation.
// Keys are passed in sorted order; an empty value removes the key.
func (c *Context) RelationSet(relationId string, settings map[string]string) error {
	if len(settings) == 0 {
		return nil
	}
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var args []string
	if relationId != "" {
		args = append(args, "-r", relationId)
	}
	for _, k := range keys {
		args = append(args, k+"="+settings[k])
	}
	if _, err := c.runner.Run("relation-set", args...); err != nil {
		return errors.Annotatef(err, "setting relation %q", relationId)
	}
	return nil
}

// Log sends message to the unit log at the given level.
func (c *Context) Log(level loggo.Level, message string) error {
	if level == loggo.UNSPECIFIED {
		level = loggo.INFO
	}
	_, err := c.runner.Run("juju-log", "-l", level.String(), message)
	return errors.Trace(err)
}
