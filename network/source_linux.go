// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

//go:build linux

package network

import (
	"net"

	"github.com/juju/errors"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// netlinkAddr implements ConfigSourceAddr by wrapping a netlink address,
// which unlike the net package carries the kernel address flags.
type netlinkAddr struct {
	addr *netlink.Addr
}

// IP (ConfigSourceAddr) is a simple property accessor.
func (a *netlinkAddr) IP() net.IP {
	return a.addr.IP
}

// IPNet (ConfigSourceAddr) is a simple property accessor.
func (a *netlinkAddr) IPNet() *net.IPNet {
	return a.addr.IPNet
}

// String (ConfigSourceAddr) returns the address in CIDR form.
func (a *netlinkAddr) String() string {
	return a.addr.IPNet.String()
}

// Temporary (ConfigSourceAddr) reports the IFA_F_TEMPORARY flag.
func (a *netlinkAddr) Temporary() bool {
	return a.addr.Flags&unix.IFA_F_TEMPORARY != 0
}

// Deprecated (ConfigSourceAddr) reports the IFA_F_DEPRECATED flag.
func (a *netlinkAddr) Deprecated() bool {
	return a.addr.Flags&unix.IFA_F_DEPRECATED != 0
}

// netlinkNIC implements ConfigSourceNIC by wrapping a netlink Link.
type netlinkNIC struct {
	nic      netlink.Link
	getAddrs func(netlink.Link) ([]netlink.Addr, error)
}

// Name returns the name of the device.
func (n *netlinkNIC) Name() string {
	return n.nic.Attrs().Name
}

// IsUp returns true if the interface is in the "up" state.
func (n *netlinkNIC) IsUp() bool {
	return n.nic.Attrs().Flags&net.FlagUp > 0
}

// Addresses returns the IPv6 addresses associated with the device.
func (n *netlinkNIC) Addresses() ([]ConfigSourceAddr, error) {
	addrs, err := n.getAddrs(n.nic)
	if err != nil {
		return nil, errors.Annotatef(err, "retrieving addresses for interface %q", n.Name())
	}

	result := make([]ConfigSourceAddr, len(addrs))
	for i := range addrs {
		result[i] = &netlinkAddr{&addrs[i]}
	}
	return result, nil
}

type netlinkConfigSource struct {
	linkList func() ([]netlink.Link, error)
	getAddrs func(netlink.Link) ([]netlink.Addr, error)
}

// Interfaces returns the network interfaces on the machine.
func (s *netlinkConfigSource) Interfaces() ([]ConfigSourceNIC, error) {
	links, err := s.linkList()
	if err != nil {
		return nil, errors.Annotate(err, "detecting network interfaces")
	}

	result := make([]ConfigSourceNIC, len(links))
	for i, link := range links {
		result[i] = &netlinkNIC{nic: link, getAddrs: s.getAddrs}
	}
	return result, nil
}

// DefaultConfigSource returns a ConfigSource backed by netlink.
func DefaultConfigSource() ConfigSource {
	return &netlinkConfigSource{
		linkList: netlink.LinkList,
		getAddrs: func(link netlink.Link) ([]netlink.Addr, error) {
			return netlink.AddrList(link, netlink.FAMILY_V6)
		},
	}
}
