// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hookenv

import (
	"fmt"
	"io"

	"github.com/juju/loggo"
)

// LogWriter is a loggo.Writer that forwards log records to the unit log
// through juju-log.
type LogWriter struct {
	ctx *Context
	env Environment

	// Fallback receives records that juju-log could not deliver.
	Fallback io.Writer
}

var _ loggo.Writer = (*LogWriter)(nil)

// NewLogWriter returns a LogWriter sending records through ctx.
func NewLogWriter(ctx *Context, env Environment, fallback io.Writer) *LogWriter {
	return &LogWriter{ctx: ctx, env: env, Fallback: fallback}
}

// Write implements loggo.Writer.
func (w *LogWriter) Write(entry loggo.Entry) {
	message := entry.Message
	if w.env.RelationId != "" {
		message = w.env.RelationId + ": " + message
	}
	err := w.ctx.Log(entry.Level, fmt.Sprintf("%s %s", entry.Module, message))
	if err != nil && w.Fallback != nil {
		fmt.Fprintf(w.Fallback, "%s %s %s\n", entry.Level, entry.Module, message)
	}
}
