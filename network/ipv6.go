// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package network

import (
	"net"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
)

// GlobalIPv6Addresses returns the global IPv6 addresses of the machine in
// CIDR form, in interface order. When iface is not empty only that
// interface is considered. Link-local, temporary and deprecated
// addresses are skipped, as is any address whose IP, CIDR form or
// subnet is in exclude. A NotFound error is returned when nothing is left.
func GlobalIPv6Addresses(source ConfigSource, iface string, exclude set.Strings) ([]string, error) {
	nics, err := source.Interfaces()
	if err != nil {
		return nil, errors.Trace(err)
	}

	seen := set.NewStrings()
	var result []string
	for _, nic := range nics {
		if iface != "" && nic.Name() != iface {
			continue
		}
		if !nic.IsUp() {
			logger.Tracef("skipping interface %q: not up", nic.Name())
			continue
		}
		addrs, err := nic.Addresses()
		if err != nil {
			return nil, errors.Trace(err)
		}
		for _, addr := range addrs {
			if !isGlobalIPv6(addr.IP()) || addr.Temporary() || addr.Deprecated() {
				continue
			}
			cidr := addr.String()
			if seen.Contains(cidr) || isExcluded(addr, exclude) {
				continue
			}
			seen.Add(cidr)
			result = append(result, cidr)
		}
	}

	if len(result) == 0 {
		if iface != "" {
			return nil, errors.NotFoundf("global IPv6 address on interface %q", iface)
		}
		return nil, errors.NotFoundf("global IPv6 address")
	}
	logger.Debugf("found global IPv6 addresses %v", result)
	return result, nil
}

func isExcluded(addr ConfigSourceAddr, exclude set.Strings) bool {
	if exclude.Contains(addr.String()) || exclude.Contains(addr.IP().String()) {
		return true
	}
	ipNet := addr.IPNet()
	if ipNet == nil {
		return false
	}
	subnet := net.IPNet{IP: ipNet.IP.Mask(ipNet.Mask), Mask: ipNet.Mask}
	return exclude.Contains(subnet.String())
}
