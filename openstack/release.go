// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package openstack

import (
	"github.com/juju/errors"
)

const (
	// DefaultBaseRelease is the codename returned when no source can
	// tell which release is installed.
	DefaultBaseRelease = "essex"

	installSourceKey    = "openstack-origin"
	gitInstallSourceKey = "openstack-origin-git"
)

// ReleaseCache holds a resolved release codename until it is reset.
// The zero value is empty and ready to use.
type ReleaseCache struct {
	codename string
}

// Get returns the cached codename, if any.
func (c *ReleaseCache) Get() (string, bool) {
	return c.codename, c.codename != ""
}

// Set replaces the cached codename.
func (c *ReleaseCache) Set(codename string) {
	c.codename = codename
}

// Reset empties the cache.
func (c *ReleaseCache) Reset() {
	c.codename = ""
}

// ReleaseResolverConfig holds the dependencies of a ReleaseResolver.
type ReleaseResolverConfig struct {
	// Config reads the charm config.
	Config ConfigGetter

	// Lookup derives codenames from each release source.
	Lookup ReleaseLookup

	// Cache holds the resolved codename between calls. A private cache
	// is used when nil.
	Cache *ReleaseCache

	// Base is returned when no source resolves. When empty an
	// unresolved release is reported as an empty codename.
	Base string
}

// Validate returns an error if the config cannot be used to create a
// ReleaseResolver.
func (config ReleaseResolverConfig) Validate() error {
	if config.Config == nil {
		return errors.NotValidf("nil Config")
	}
	if config.Lookup == nil {
		return errors.NotValidf("nil Lookup")
	}
	if config.Base != "" && !IsCodename(config.Base) {
		return errors.NotValidf("base release %q", config.Base)
	}
	return nil
}

// ReleaseResolver works out which OpenStack release is installed.
type ReleaseResolver struct {
	config ConfigGetter
	lookup ReleaseLookup
	cache  *ReleaseCache
	base   string
}

// NewReleaseResolver returns a ReleaseResolver for the given config.
func NewReleaseResolver(config ReleaseResolverConfig) (*ReleaseResolver, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	cache := config.Cache
	if cache == nil {
		cache = &ReleaseCache{}
	}
	return &ReleaseResolver{
		config: config.Config,
		lookup: config.Lookup,
		cache:  cache,
		base:   config.Base,
	}, nil
}

// OSRelease returns the codename of the installed OpenStack release.
// A cached answer is returned without consulting any source unless
// resetCache is true. Otherwise the sources are tried in order, first
// answer wins: the openstack-origin config, the installed version of pkg
// and the openstack-origin-git config, falling back to the base release.
func (r *ReleaseResolver) OSRelease(pkg string, resetCache bool) (string, error) {
	if resetCache {
		r.cache.Reset()
	}
	if codename, ok := r.cache.Get(); ok {
		return codename, nil
	}

	codename, err := r.resolve(pkg)
	if err != nil {
		return "", errors.Trace(err)
	}
	if codename == "" {
		codename = r.base
	}
	if codename == "" {
		logger.Warningf("cannot determine OpenStack release for %q", pkg)
		return "", nil
	}
	logger.Debugf("OpenStack release for %q is %s", pkg, codename)
	r.cache.Set(codename)
	return codename, nil
}

func (r *ReleaseResolver) resolve(pkg string) (string, error) {
	source, set, err := r.config.Config(installSourceKey)
	if err != nil {
		return "", errors.Trace(err)
	}
	if set {
		codename, err := r.lookup.CodenameForInstallSource(source)
		if err != nil {
			return "", errors.Annotatef(err, "deriving release from %s %q", installSourceKey, source)
		}
		if codename != "" {
			return codename, nil
		}
	}

	codename, err := r.lookup.CodenameForPackage(pkg, false)
	if err != nil {
		return "", errors.Annotatef(err, "deriving release from package %q", pkg)
	}
	if codename != "" {
		return codename, nil
	}

	gitSource, set, err := r.config.Config(gitInstallSourceKey)
	if err != nil {
		return "", errors.Trace(err)
	}
	if !set {
		return "", nil
	}
	codename, err = r.lookup.CodenameForGitSource(gitSource)
	if err != nil {
		return "", errors.Annotatef(err, "deriving release from %s", gitInstallSourceKey)
	}
	return codename, nil
}
