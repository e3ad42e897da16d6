// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package openstack

import (
	"os/exec"
	"strings"

	"github.com/juju/errors"
)

// PackageVersioner reports the installed version of a package. It returns
// a NotFound error when the package is not installed.
type PackageVersioner interface {
	InstalledVersion(pkg string) (string, error)
}

// osCommandOutput calls cmd.Output, this is used as an overloading point so
// we can test what *would* be run without actually executing another
// program.
func osCommandOutput(cmd *exec.Cmd) ([]byte, error) {
	return cmd.Output()
}

var commandOutput = osCommandOutput

// Dpkg is a PackageVersioner backed by dpkg-query.
type Dpkg struct{}

// InstalledVersion implements PackageVersioner.
func (Dpkg) InstalledVersion(pkg string) (string, error) {
	cmd := exec.Command("dpkg-query", "--show", "--showformat=${Status}|${Version}", pkg)
	out, err := commandOutput(cmd)
	if _, ok := err.(*exec.ExitError); ok {
		// dpkg-query exits 1 for packages it has never heard of.
		return "", errors.NotFoundf("package %q", pkg)
	}
	if err != nil {
		return "", errors.Annotatef(err, "querying package %q", pkg)
	}

	status, version, _ := strings.Cut(strings.TrimSpace(string(out)), "|")
	if !strings.HasSuffix(status, " installed") || version == "" {
		return "", errors.NotFoundf("installed package %q", pkg)
	}
	return version, nil
}

// upstreamVersion strips the epoch and Debian revision from a package
// version, so "2:12.0.0-0ubuntu1" becomes "12.0.0".
func upstreamVersion(version string) string {
	if _, rest, ok := strings.Cut(version, ":"); ok {
		version = rest
	}
	if i := strings.LastIndex(version, "-"); i > 0 {
		version = version[:i]
	}
	return version
}
