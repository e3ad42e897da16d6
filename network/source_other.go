// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

//go:build !linux

package network

import (
	"net"

	"github.com/juju/errors"
)

// netNIC implements ConfigSourceNIC by wrapping a network interface
// reference from the standard library `net` package.
type netNIC struct {
	nic *net.Interface
}

// Name returns the name of the device.
func (n *netNIC) Name() string {
	return n.nic.Name
}

// IsUp returns true if the interface is in the "up" state.
func (n *netNIC) IsUp() bool {
	return n.nic.Flags&net.FlagUp > 0
}

// Addresses returns all IP addresses associated with the device.
func (n *netNIC) Addresses() ([]ConfigSourceAddr, error) {
	addrs, err := n.nic.Addrs()
	if err != nil {
		return nil, errors.Annotatef(err, "retrieving addresses for interface %q", n.nic.Name)
	}

	result := make([]ConfigSourceAddr, 0, len(addrs))
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		result = append(result, &netAddr{ipNet: ipNet})
	}
	return result, nil
}

// netAddr implements ConfigSourceAddr. The net package exposes no
// address flags, so nothing is ever temporary or deprecated.
type netAddr struct {
	ipNet *net.IPNet
}

func (a *netAddr) IP() net.IP        { return a.ipNet.IP }
func (a *netAddr) IPNet() *net.IPNet { return a.ipNet }
func (a *netAddr) String() string    { return a.ipNet.String() }
func (a *netAddr) Temporary() bool   { return false }
func (a *netAddr) Deprecated() bool  { return false }

type netPackageConfigSource struct {
	interfaces func() ([]net.Interface, error)
}

// Interfaces returns the network interfaces on the machine.
func (n *netPackageConfigSource) Interfaces() ([]ConfigSourceNIC, error) {
	nics, err := n.interfaces()
	if err != nil {
		return nil, errors.Annotate(err, "detecting network interfaces")
	}

	result := make([]ConfigSourceNIC, len(nics))
	for i := range nics {
		result[i] = &netNIC{nic: &nics[i]}
	}
	return result, nil
}

// DefaultConfigSource returns a ConfigSource backed by the net package.
func DefaultConfigSource() ConfigSource {
	return &netPackageConfigSource{
		interfaces: net.Interfaces,
	}
}
