// Package netutils provides some helper network functions.
package netutils

import (
	"fmt"
	"net"
	"net/netip"
	"strings"
)

type IfaceDetails struct {
	IfaceIP netip.Addr
	*net.Interface
}

// IfaceSummary holds the fields shown by the ifaces listing.
type IfaceSummary struct {
	Name     string
	IPv4     string
	Mac      string
	Up       bool
	Running  bool
	Loopback bool
}

var macSeparators = strings.NewReplacer(":", "", "-", "", "_", "", " ", "", ".", "")

// NormalizeMAC strips separator characters from a hardware address and lowercases
// it, e.g. "AA:BB:CC:DD:EE:FF" becomes "aabbccddeeff".
func NormalizeMAC(mac string) string {
	return strings.ToLower(macSeparators.Replace(strings.TrimSpace(mac)))
}

// PrefixOf returns the first three octets of an IPv4 address, the form used to
// sweep a /24-style range. Returns "" for non-IPv4 addresses.
func PrefixOf(addr netip.Addr) string {
	if !addr.Is4() {
		return ""
	}
	octets := addr.As4()
	return fmt.Sprintf("%d.%d.%d", octets[0], octets[1], octets[2])
}

// PrimaryIPv4 returns the first IPv4 address found on an interface that is up
// and not a loopback.
func PrimaryIPv4() (netip.Addr, error) {
	allIfaces, err := net.Interfaces()
	if err != nil {
		return netip.Addr{}, err
	}

	for _, iface := range allIfaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			pfx, err := netip.ParsePrefix(addr.String())
			if err != nil {
				continue
			}
			if pfx.Addr().Is4() {
				return pfx.Addr(), nil
			}
		}
	}

	return netip.Addr{}, fmt.Errorf("no usable IPv4 address on any interface")
}

// GetIfaceByIP returns the interface attached to the network that contains
// addr.
func GetIfaceByIP(addr netip.Addr) (*net.Interface, error) {
	allIfaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	for _, iface := range allIfaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, ifaceAddr := range addrs {
			pfx, err := netip.ParsePrefix(ifaceAddr.String())
			if err != nil {
				continue
			}
			if pfx.Masked().Contains(addr) {
				return &iface, nil
			}
		}
	}

	return nil, fmt.Errorf("no interface connected to the network of %v", addr)
}

// DefaultInterface returns the first interface that is up, not a loopback and
// carries an IPv4 address.
func DefaultInterface() (*net.Interface, error) {
	allIfaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	for _, iface := range allIfaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		if _, err := GetFirstIfaceIP(&iface); err == nil {
			return &iface, nil
		}
	}
	return nil, fmt.Errorf("no usable interface found")
}

// GetFirstIfaceIP gets the first IPv4 address on the interface iface.
func GetFirstIfaceIP(iface *net.Interface) (*netip.Prefix, error) {
	addrs, err := iface.Addrs()
	if err != nil {
		return nil, err
	}
	if len(addrs) < 1 {
		return nil, fmt.Errorf("the interface %v has no IP addresses", iface.Name)
	}

	for _, addr := range addrs {
		addr, aerr := netip.ParsePrefix(addr.String())
		if aerr != nil {
			continue
		}
		if addr.Addr().Is4() {
			return &addr, nil
		}
	}
	return nil, fmt.Errorf("the interface %v has no IPv4 addresses", iface.Name)
}

// VerifyandGetIfaceDetails first verifies that the iface is up and running and is not a loopback
// interface and then returns the interface's first IPv4 address together with other details of
// the interface in an IfaceDetails struct.
func VerifyandGetIfaceDetails(iface *net.Interface) (*IfaceDetails, error) {
	if iface.Flags&net.FlagLoopback != 0 {
		return nil, fmt.Errorf("cannot scan on a loopback interface")
	} else if iface.Flags&net.FlagUp == 0 {
		return nil, fmt.Errorf("interface %v is administratively down", iface.Name)
	} else if iface.Flags&net.FlagRunning == 0 {
		return nil, fmt.Errorf("interface %v is not running", iface.Name)
	}

	ifaceAddr, err := GetFirstIfaceIP(iface)
	if err != nil {
		return nil, err
	}

	return &IfaceDetails{
		IfaceIP:   ifaceAddr.Addr(),
		Interface: iface,
	}, nil
}

// Interfaces summarizes every interface on the host for display.
func Interfaces() ([]IfaceSummary, error) {
	allIfaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	summaries := make([]IfaceSummary, 0, len(allIfaces))
	for _, iface := range allIfaces {
		s := IfaceSummary{
			Name:     iface.Name,
			Mac:      iface.HardwareAddr.String(),
			Up:       iface.Flags&net.FlagUp != 0,
			Running:  iface.Flags&net.FlagRunning != 0,
			Loopback: iface.Flags&net.FlagLoopback != 0,
		}
		if pfx, err := GetFirstIfaceIP(&iface); err == nil {
			s.IPv4 = pfx.String()
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
