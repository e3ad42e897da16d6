// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package network discovers the addresses a unit publishes to its
// relations.
package network

import (
	"net"
	"strings"
)

// AddressType represents the possible ways of specifying a unit location
// by either a hostname resolvable by dns lookup, or IPv4 or IPv6 address.
type AddressType string

const (
	HostName    AddressType = "hostname"
	IPv4Address AddressType = "ipv4"
	IPv6Address AddressType = "ipv6"
)

// parseIP accepts a bare address or one in CIDR notation.
func parseIP(value string) net.IP {
	if ip, _, err := net.ParseCIDR(value); err == nil {
		return ip
	}
	return net.ParseIP(value)
}

// DeriveAddressType attempts to detect the type of address given.
func DeriveAddressType(value string) AddressType {
	ip := parseIP(value)
	switch {
	case ip == nil:
		return HostName
	case ip.To4() != nil:
		return IPv4Address
	default:
		return IPv6Address
	}
}

// IsIPv6 reports whether value is an IPv6 address, with or without a
// prefix length.
func IsIPv6(value string) bool {
	return DeriveAddressType(strings.TrimSpace(value)) == IPv6Address
}

// isGlobalIPv6 reports whether ip is an IPv6 address usable from outside
// the link it is configured on.
func isGlobalIPv6(ip net.IP) bool {
	if ip == nil || ip.To4() != nil || ip.To16() == nil {
		return false
	}
	return ip.IsGlobalUnicast() && !ip.IsLinkLocalUnicast()
}
