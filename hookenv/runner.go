// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hookenv

import (
	"os"
	"os/exec"
	"strings"

	"github.com/juju/errors"
)

// Runner runs a hook tool and returns what it wrote to stdout.
type Runner interface {
	Run(tool string, args ...string) ([]byte, error)
}

// osCommandOutput calls cmd.Output, this is used as an overloading point so
// we can test what *would* be run without actually executing another
// program.
func osCommandOutput(cmd *exec.Cmd) ([]byte, error) {
	return cmd.Output()
}

var commandOutput = osCommandOutput

type execRunner struct {
	env []string
}

// NewExecRunner returns a Runner that executes hook tools found on the
// PATH, with the given hook environment layered over the process one.
func NewExecRunner(env Environment) Runner {
	return &execRunner{env: env.Vars()}
}

// Run implements Runner. It must not log: LogWriter calls it while loggo
// holds its write lock.
func (r *execRunner) Run(tool string, args ...string) ([]byte, error) {
	cmd := exec.Command(tool, args...)
	cmd.Env = append(os.Environ(), r.env...)
	out, err := commandOutput(cmd)
	if err == nil {
		return out, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
			return nil, errors.Errorf("%s failed: %s", tool, stderr)
		}
	}
	return nil, errors.Annotatef(err, "running %s", tool)
}
