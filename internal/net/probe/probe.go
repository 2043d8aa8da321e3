// Package probe provides the reachability checks used to decide whether a
// single host address is alive.
package probe

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/kakeetopius/gsweep/internal/netutils"
)

// Prober answers whether one address responded to a reachability check within
// the timeout. Implementations must not block past the timeout from the
// caller's point of view.
type Prober interface {
	Probe(ctx context.Context, addr string, timeout time.Duration) (bool, error)
}

// Config selects a probe strategy.
type Config struct {
	Kind       string // "icmp" (default) or "arp"
	Network    string // 3-octet prefix being swept, picks the ARP sending interface
	Interface  string // interface to send ARP requests from, overrides the network-derived choice
	Privileged bool   // raw-socket ICMP instead of unprivileged UDP pings
}

// New builds the prober for the configured strategy.
func New(cfg Config) (Prober, error) {
	switch cfg.Kind {
	case "", "icmp":
		return NewICMP(cfg.Privileged), nil
	case "arp":
		return newARP(cfg)
	default:
		return nil, fmt.Errorf("unknown probe strategy %q", cfg.Kind)
	}
}

// networkIface picks the interface attached to the swept network, so probes
// leave through the right link when several are up. Falls back to the first
// usable interface when no local interface is on that network.
func networkIface(prefix string) (*net.Interface, error) {
	addr, err := netip.ParseAddr(prefix + ".0")
	if err != nil {
		return netutils.DefaultInterface()
	}
	if iface, err := netutils.GetIfaceByIP(addr); err == nil {
		return iface, nil
	}
	return netutils.DefaultInterface()
}
