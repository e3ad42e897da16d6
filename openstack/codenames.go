// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package openstack

import (
	"strings"
)

// release ties an OpenStack codename to its co-ordinated version and the
// Ubuntu series that shipped it.
type release struct {
	Version  string
	Codename string
	Series   string
}

// releases is ordered oldest first.
var releases = []release{
	{"2011.2", "diablo", "oneiric"},
	{"2012.1", "essex", "precise"},
	{"2012.2", "folsom", "quantal"},
	{"2013.1", "grizzly", "raring"},
	{"2013.2", "havana", "saucy"},
	{"2014.1", "icehouse", "trusty"},
	{"2014.2", "juno", "utopic"},
	{"2015.1", "kilo", "vivid"},
	{"2015.2", "liberty", "wily"},
	{"2016.1", "mitaka", "xenial"},
	{"2016.2", "newton", "yakkety"},
	{"2017.1", "ocata", "zesty"},
	{"2017.2", "pike", "artful"},
	{"2018.1", "queens", "bionic"},
	{"2018.2", "rocky", "cosmic"},
	{"2019.1", "stein", "disco"},
	{"2019.2", "train", "eoan"},
	{"2020.1", "ussuri", "focal"},
	{"2020.2", "victoria", "groovy"},
	{"2021.1", "wallaby", "hirsute"},
	{"2021.2", "xena", "impish"},
	{"2022.1", "yoga", "jammy"},
}

// swiftCodenames maps swift versions to the releases that shipped them.
// Some versions span two releases.
var swiftCodenames = []struct {
	Codename string
	Versions []string
}{
	{"diablo", []string{"1.4.3"}},
	{"essex", []string{"1.4.8"}},
	{"folsom", []string{"1.7.4"}},
	{"grizzly", []string{"1.7.6", "1.7.7", "1.8.0"}},
	{"havana", []string{"1.9.0", "1.9.1", "1.10.0"}},
	{"icehouse", []string{"1.11.0", "1.12.0", "1.13.0", "1.13.1"}},
	{"juno", []string{"2.0.0", "2.1.0", "2.2.0"}},
	{"kilo", []string{"2.2.1", "2.2.2"}},
	{"liberty", []string{"2.3.0", "2.4.0", "2.5.0"}},
	{"mitaka", []string{"2.5.0", "2.6.0", "2.7.0"}},
	{"newton", []string{"2.8.0", "2.9.0", "2.10.0"}},
	{"ocata", []string{"2.11.0", "2.12.0", "2.13.0"}},
	{"pike", []string{"2.13.0", "2.15.0"}},
	{"queens", []string{"2.16.0", "2.17.0"}},
	{"rocky", []string{"2.18.0", "2.19.0"}},
	{"stein", []string{"2.20.0", "2.21.0"}},
	{"train", []string{"2.22.0", "2.23.0"}},
	{"ussuri", []string{"2.24.0", "2.25.0"}},
	{"victoria", []string{"2.25.0", "2.26.0"}},
}

// packageMajorVersions holds the major version each project released
// for liberty, the first release after co-ordinated YYYY.N versions were
// dropped. Later releases increment it by one.
var packageMajorVersions = map[string]int{
	"nova-common":       12,
	"neutron-common":    7,
	"cinder-common":     7,
	"keystone":          8,
	"glance-common":     11,
	"heat-common":       5,
	"ceilometer-common": 5,
}

// lastPackageCodename is the newest release covered by
// packageMajorVersions.
const lastPackageCodename = "victoria"

// IsCodename reports whether name is a known OpenStack codename.
func IsCodename(name string) bool {
	return releaseIndex(name) >= 0
}

// LatestCodename returns the newest known OpenStack codename.
func LatestCodename() string {
	return releases[len(releases)-1].Codename
}

// CompareCodenames returns -1, 0 or 1 as a is older than, the same as or
// newer than b. Unknown codenames sort before known ones.
func CompareCodenames(a, b string) int {
	ia, ib := releaseIndex(a), releaseIndex(b)
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	}
	return 0
}

func releaseIndex(codename string) int {
	for i, r := range releases {
		if r.Codename == codename {
			return i
		}
	}
	return -1
}

// codenameForVersion maps a co-ordinated YYYY.N version to its codename.
func codenameForVersion(version string) string {
	for _, r := range releases {
		if r.Version == version {
			return r.Codename
		}
	}
	return ""
}

// codenameForSeries returns the OpenStack release shipped in the Ubuntu
// archive for series.
func codenameForSeries(series string) string {
	for _, r := range releases {
		if r.Series == series {
			return r.Codename
		}
	}
	return ""
}

// codenameForSwiftVersion maps a swift x.y.z version to a codename. When
// the version shipped in two releases the newer one is returned.
func codenameForSwiftVersion(version string) string {
	var found string
	for _, entry := range swiftCodenames {
		for _, v := range entry.Versions {
			if v == version && (found == "" || CompareCodenames(entry.Codename, found) > 0) {
				found = entry.Codename
			}
		}
	}
	return found
}

// codenameForPackageMajor maps the major version of a project that no
// longer uses co-ordinated versions to a codename.
func codenameForPackageMajor(pkg string, major int) string {
	base, ok := packageMajorVersions[pkg]
	if !ok {
		return ""
	}
	first := releaseIndex("liberty")
	last := releaseIndex(lastPackageCodename)
	i := first + major - base
	if i < first || i > last {
		return ""
	}
	return releases[i].Codename
}

// codenameInString returns the first known codename that appears in s.
func codenameInString(s string) string {
	for _, r := range releases {
		if strings.Contains(s, r.Codename) {
			return r.Codename
		}
	}
	return ""
}
