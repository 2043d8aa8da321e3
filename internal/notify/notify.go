// Package notify delivers the result of a completed sweep to external sinks.
// Delivery is fire-once per scan and best effort; a failing sink is logged by
// the caller and never affects the scan result.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kakeetopius/gsweep/internal/net/sweep"
)

// Report is the scan outcome handed to each sink.
type Report struct {
	Network  string
	Devices  []sweep.Device
	Duration time.Duration
	When     time.Time
}

// Sink delivers one report.
type Sink interface {
	Send(ctx context.Context, report Report) error
}

// Subject is a one-line headline for the report.
func (r Report) Subject() string {
	return fmt.Sprintf("gsweep: %d host(s) found on %s.0/24", len(r.Devices), r.Network)
}

// Body formats the full device list as plain text.
func (r Report) Body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scanned %s.0-254 on %s in %s.\n", r.Network, r.When.Format(time.RFC1123), r.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "Hosts found: %d\n\n", len(r.Devices))
	for _, dev := range r.Devices {
		fmt.Fprintf(&b, "%-15s  %-12s  %s\n", dev.IP, dev.MAC, dev.Vendor)
	}
	return b.String()
}

// Summary is a short form of Body for sinks with message-length limits.
func (r Report) Summary() string {
	const maxListed = 25

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Subject())
	for i, dev := range r.Devices {
		if i == maxListed {
			fmt.Fprintf(&b, "... and %d more\n", len(r.Devices)-maxListed)
			break
		}
		fmt.Fprintf(&b, "%s %s %s\n", dev.IP, dev.MAC, dev.Vendor)
	}
	return strings.TrimRight(b.String(), "\n")
}
