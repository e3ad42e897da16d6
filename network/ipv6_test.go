// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package network_test

import (
	"net"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/charmhelpers/network"
)

type ipv6Suite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&ipv6Suite{})

type fakeAddr struct {
	cidr       string
	temporary  bool
	deprecated bool
}

func (a fakeAddr) IP() net.IP {
	ip, _, _ := net.ParseCIDR(a.cidr)
	return ip
}

func (a fakeAddr) IPNet() *net.IPNet {
	_, ipNet, _ := net.ParseCIDR(a.cidr)
	return ipNet
}

func (a fakeAddr) String() string   { return a.cidr }
func (a fakeAddr) Temporary() bool  { return a.temporary }
func (a fakeAddr) Deprecated() bool { return a.deprecated }

type fakeNIC struct {
	name  string
	down  bool
	addrs []network.ConfigSourceAddr
	err   error
}

func (n fakeNIC) Name() string { return n.name }
func (n fakeNIC) IsUp() bool   { return !n.down }

func (n fakeNIC) Addresses() ([]network.ConfigSourceAddr, error) {
	return n.addrs, n.err
}

type fakeSource struct {
	nics []network.ConfigSourceNIC
	err  error
}

func (s fakeSource) Interfaces() ([]network.ConfigSourceNIC, error) {
	return s.nics, s.err
}

var (
	addr1 = "2001:db8:1:0:f816:3eff:fe45:7c/64"
	addr2 = "2001:db8:1:0:d0cf:528c:23eb:5000/64"
)

func (s *ipv6Suite) source() fakeSource {
	return fakeSource{nics: []network.ConfigSourceNIC{
		fakeNIC{name: "lo", addrs: []network.ConfigSourceAddr{
			fakeAddr{cidr: "127.0.0.1/8"},
			fakeAddr{cidr: "::1/128"},
		}},
		fakeNIC{name: "eth0", addrs: []network.ConfigSourceAddr{
			fakeAddr{cidr: "10.5.0.12/16"},
			fakeAddr{cidr: addr1},
			fakeAddr{cidr: "2001:db8:1:0:8c1a:1e1f:3a2b:11/64", temporary: true},
			fakeAddr{cidr: "fe80::f816:3eff:fe45:7c/64"},
		}},
		fakeNIC{name: "eth1", addrs: []network.ConfigSourceAddr{
			fakeAddr{cidr: addr2},
			fakeAddr{cidr: "2001:db8:1:0:dead:beef:0:1/64", deprecated: true},
			fakeAddr{cidr: addr1},
		}},
		fakeNIC{name: "eth2", down: true, addrs: []network.ConfigSourceAddr{
			fakeAddr{cidr: "2001:db8:2::1/64"},
		}},
	}}
}

func (s *ipv6Suite) TestGlobalIPv6Addresses(c *gc.C) {
	addrs, err := network.GlobalIPv6Addresses(s.source(), "", nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(addrs, jc.DeepEquals, []string{addr1, addr2})
}

func (s *ipv6Suite) TestGlobalIPv6AddressesInterface(c *gc.C) {
	addrs, err := network.GlobalIPv6Addresses(s.source(), "eth1", nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(addrs, jc.DeepEquals, []string{addr2, addr1})
}

func (s *ipv6Suite) TestGlobalIPv6AddressesExclude(c *gc.C) {
	exclude := set.NewStrings("2001:db8:1:0:f816:3eff:fe45:7c")
	addrs, err := network.GlobalIPv6Addresses(s.source(), "", exclude)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(addrs, jc.DeepEquals, []string{addr2})

	exclude = set.NewStrings(addr2)
	addrs, err = network.GlobalIPv6Addresses(s.source(), "", exclude)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(addrs, jc.DeepEquals, []string{addr1})
}

func (s *ipv6Suite) TestGlobalIPv6AddressesExcludeSubnet(c *gc.C) {
	source := s.source()
	source.nics = append(source.nics, fakeNIC{name: "eth3", addrs: []network.ConfigSourceAddr{
		fakeAddr{cidr: "2001:db8:3::10/64"},
	}})

	addrs, err := network.GlobalIPv6Addresses(source, "", set.NewStrings("2001:db8:1::/64"))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(addrs, jc.DeepEquals, []string{"2001:db8:3::10/64"})
}

func (s *ipv6Suite) TestGlobalIPv6AddressesNotFound(c *gc.C) {
	_, err := network.GlobalIPv6Addresses(s.source(), "lo", nil)
	c.Check(err, jc.Satisfies, errors.IsNotFound)
	c.Check(err, gc.ErrorMatches, `global IPv6 address on interface "lo" not found`)

	_, err = network.GlobalIPv6Addresses(fakeSource{}, "", nil)
	c.Check(err, gc.ErrorMatches, `global IPv6 address not found`)
}

func (s *ipv6Suite) TestGlobalIPv6AddressesInterfacesError(c *gc.C) {
	_, err := network.GlobalIPv6Addresses(fakeSource{err: errors.New("netlink socket closed")}, "", nil)
	c.Check(err, gc.ErrorMatches, "netlink socket closed")
}

func (s *ipv6Suite) TestGlobalIPv6AddressesAddressError(c *gc.C) {
	source := fakeSource{nics: []network.ConfigSourceNIC{
		fakeNIC{name: "eth0", err: errors.New("no such device")},
	}}
	_, err := network.GlobalIPv6Addresses(source, "", nil)
	c.Check(err, gc.ErrorMatches, "no such device")
}
