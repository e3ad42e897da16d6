// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package network

import (
	"net"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("juju.charmhelpers.network")

// ConfigSourceAddr describes an address assigned to a network interface.
type ConfigSourceAddr interface {
	// IP returns the address in net.IP form.
	IP() net.IP

	// IPNet returns the subnet corresponding with the address
	// provided that it is discernible.
	IPNet() *net.IPNet

	// String returns the address in CIDR form when the prefix is known.
	String() string

	// Temporary is true for IPv6 privacy extension addresses.
	Temporary() bool

	// Deprecated is true when the address lifetime has expired and it
	// must not be used for new connections.
	Deprecated() bool
}

// ConfigSourceNIC describes a network interface on the machine.
type ConfigSourceNIC interface {
	// Name returns the name of the network interface; E.g. "eth0".
	Name() string

	// IsUp returns true if the interface is in the "up" state.
	IsUp() bool

	// Addresses returns IP addresses associated with the network interface.
	Addresses() ([]ConfigSourceAddr, error)
}

// ConfigSource lists the network interfaces of the machine.
type ConfigSource interface {
	// Interfaces returns the network interfaces on the machine.
	Interfaces() ([]ConfigSourceNIC, error)
}
