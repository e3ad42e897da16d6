// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package openstack_test

import (
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/charmhelpers/openstack"
)

type codenamesSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&codenamesSuite{})

func (s *codenamesSuite) TestIsCodename(c *gc.C) {
	c.Check(openstack.IsCodename("essex"), jc.IsTrue)
	c.Check(openstack.IsCodename("yoga"), jc.IsTrue)
	c.Check(openstack.IsCodename("cloud-pocket"), jc.IsFalse)
	c.Check(openstack.IsCodename(""), jc.IsFalse)
}

func (s *codenamesSuite) TestLatestCodename(c *gc.C) {
	c.Check(openstack.LatestCodename(), gc.Equals, "yoga")
}

func (s *codenamesSuite) TestCompareCodenames(c *gc.C) {
	c.Check(openstack.CompareCodenames("essex", "folsom"), gc.Equals, -1)
	c.Check(openstack.CompareCodenames("queens", "mitaka"), gc.Equals, 1)
	c.Check(openstack.CompareCodenames("kilo", "kilo"), gc.Equals, 0)
	c.Check(openstack.CompareCodenames("unknown", "diablo"), gc.Equals, -1)
}

func (s *codenamesSuite) TestCodenameForSeries(c *gc.C) {
	c.Check(openstack.CodenameForSeries("precise"), gc.Equals, "essex")
	c.Check(openstack.CodenameForSeries("trusty"), gc.Equals, "icehouse")
	c.Check(openstack.CodenameForSeries("xenial"), gc.Equals, "mitaka")
	c.Check(openstack.CodenameForSeries("jammy"), gc.Equals, "yoga")
	c.Check(openstack.CodenameForSeries("warty"), gc.Equals, "")
}

func (s *codenamesSuite) TestCodenameForSwiftVersion(c *gc.C) {
	c.Check(openstack.CodenameForSwiftVersion("1.4.8"), gc.Equals, "essex")
	c.Check(openstack.CodenameForSwiftVersion("2.2.2"), gc.Equals, "kilo")
	// 2.5.0 shipped in both liberty and mitaka.
	c.Check(openstack.CodenameForSwiftVersion("2.5.0"), gc.Equals, "mitaka")
	c.Check(openstack.CodenameForSwiftVersion("9.9.9"), gc.Equals, "")
}

var packageVersionTests = []struct {
	pkg      string
	version  string
	codename string
}{
	{"nova-common", "2012.1", "essex"},
	{"nova-common", "2014.1.3", "icehouse"},
	{"nova-common", "12.0.0", "liberty"},
	{"nova-common", "13.1.4", "mitaka"},
	{"nova-common", "22.0.1", "victoria"},
	{"nova-common", "23.0.0", ""},
	{"neutron-common", "8.4.0", "mitaka"},
	{"keystone", "13.0.0", "queens"},
	{"glance-common", "11.0.1", "liberty"},
	{"heat-common", "15.0.0", "victoria"},
	{"swift-proxy", "1.13.1", "icehouse"},
	{"swift-proxy", "2.17.0", "queens"},
	{"swift", "2.17", ""},
	{"openstack-dashboard", "2013.2.1", "havana"},
	{"openstack-dashboard", "9.0.0", ""},
	{"nova-common", "rubbish", ""},
}

func (s *codenamesSuite) TestCodenameForPackageVersion(c *gc.C) {
	for i, t := range packageVersionTests {
		c.Logf("test %d: %s %s", i, t.pkg, t.version)
		c.Check(openstack.CodenameForPackageVersion(t.pkg, t.version), gc.Equals, t.codename)
	}
}

func (s *codenamesSuite) TestUpstreamVersion(c *gc.C) {
	c.Check(openstack.UpstreamVersion("2:12.0.0-0ubuntu1"), gc.Equals, "12.0.0")
	c.Check(openstack.UpstreamVersion("2014.1.3-0ubuntu1~cloud0"), gc.Equals, "2014.1.3")
	c.Check(openstack.UpstreamVersion("1:2.17.0-0ubuntu1-1"), gc.Equals, "2.17.0-0ubuntu1")
	c.Check(openstack.UpstreamVersion("2012.1"), gc.Equals, "2012.1")
}
