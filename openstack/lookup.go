// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package openstack

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/os/v2/series"
	"gopkg.in/yaml.v2"
)

// ReleaseLookup derives an OpenStack codename from each of the sources
// the ReleaseResolver consults. An empty codename with a nil error means
// the source gave no answer.
type ReleaseLookup interface {
	// CodenameForInstallSource derives the codename from an
	// openstack-origin value such as "cloud:trusty-juno".
	CodenameForInstallSource(source string) (string, error)

	// CodenameForPackage derives the codename from the installed
	// version of pkg. When fatal is false a package that is not
	// installed, or whose version is unknown, is not an error.
	CodenameForPackage(pkg string, fatal bool) (string, error)

	// CodenameForGitSource derives the codename from an
	// openstack-origin-git value.
	CodenameForGitSource(source string) (string, error)
}

// Lookup is the ReleaseLookup used on a real unit.
type Lookup struct {
	// Packages reports installed package versions.
	Packages PackageVersioner

	// HostSeries returns the Ubuntu series of the machine.
	HostSeries func() (string, error)
}

var _ ReleaseLookup = (*Lookup)(nil)

// NewLookup returns a Lookup backed by dpkg and the host's os-release.
func NewLookup() *Lookup {
	return &Lookup{
		Packages:   Dpkg{},
		HostSeries: series.HostSeries,
	}
}

// CodenameForInstallSource implements ReleaseLookup.
func (l *Lookup) CodenameForInstallSource(source string) (string, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return "", nil
	case source == "distro" || source == "distro-proposed":
		hostSeries, err := l.HostSeries()
		if err != nil {
			return "", errors.Annotate(err, "detecting host series")
		}
		codename := codenameForSeries(hostSeries)
		if codename == "" {
			return "", errors.NotFoundf("OpenStack release for series %q", hostSeries)
		}
		return codename, nil
	case strings.HasPrefix(source, "cloud:"):
		// cloud:<series>-<release>[/<pocket>]
		pocket := strings.TrimPrefix(source, "cloud:")
		pocket, _, _ = strings.Cut(pocket, "/")
		if i := strings.LastIndex(pocket, "-"); i >= 0 {
			pocket = pocket[i+1:]
		}
		if IsCodename(pocket) {
			return pocket, nil
		}
		return "", nil
	case strings.HasPrefix(source, "deb"), strings.HasPrefix(source, "ppa"), strings.HasPrefix(source, "snap"):
		return codenameInString(source), nil
	}
	return "", nil
}

var (
	swiftVersionRE = regexp.MustCompile(`^\d+\.\d+\.\d+`)
	majorMinorRE   = regexp.MustCompile(`^(\d+)\.\d+`)
)

// CodenameForPackage implements ReleaseLookup.
func (l *Lookup) CodenameForPackage(pkg string, fatal bool) (string, error) {
	full, err := l.Packages.InstalledVersion(pkg)
	if errors.IsNotFound(err) && !fatal {
		return "", nil
	}
	if err != nil {
		return "", errors.Trace(err)
	}

	codename := codenameForPackageVersion(pkg, upstreamVersion(full))
	if codename == "" && fatal {
		return "", errors.NotFoundf("OpenStack codename for %s version %s", pkg, full)
	}
	return codename, nil
}

func codenameForPackageVersion(pkg, version string) string {
	if strings.Contains(pkg, "swift") {
		return codenameForSwiftVersion(swiftVersionRE.FindString(version))
	}
	match := majorMinorRE.FindStringSubmatch(version)
	if match == nil {
		return ""
	}
	if major, err := strconv.Atoi(match[1]); err == nil {
		if codename := codenameForPackageMajor(pkg, major); codename != "" {
			return codename
		}
	}
	return codenameForVersion(match[0])
}

// gitProjects is the subset of an openstack-origin-git document used to
// derive a release.
type gitProjects struct {
	Release      string `yaml:"release"`
	Repositories []struct {
		Name   string `yaml:"name"`
		Branch string `yaml:"branch"`
	} `yaml:"repositories"`
}

// CodenameForGitSource implements ReleaseLookup. The source is either a
// bare branch shortcut ("icehouse", "master") or a projects document
// with an optional release key and a repositories list.
func (l *Lookup) CodenameForGitSource(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}

	var shortcut string
	if err := yaml.Unmarshal([]byte(source), &shortcut); err == nil {
		return codenameForBranch(shortcut), nil
	}

	var projects gitProjects
	if err := yaml.Unmarshal([]byte(source), &projects); err != nil {
		return "", errors.Annotate(err, "parsing openstack-origin-git")
	}
	if projects.Release != "" {
		return codenameForBranch(projects.Release), nil
	}
	for _, repo := range projects.Repositories {
		if repo.Name == "requirements" {
			return codenameForBranch(repo.Branch), nil
		}
	}
	return "", nil
}

// codenameForBranch maps "master", "<codename>" or "stable/<codename>" to
// a codename.
func codenameForBranch(branch string) string {
	branch = strings.TrimPrefix(strings.TrimSpace(branch), "stable/")
	if branch == "master" {
		return LatestCodename()
	}
	if IsCodename(branch) {
		return branch
	}
	return ""
}
