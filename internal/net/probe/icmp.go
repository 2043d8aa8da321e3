package probe

import (
	"context"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// ICMPProber checks reachability with a single ICMP echo request per address.
type ICMPProber struct {
	privileged bool
}

// NewICMP returns an ICMP echo prober. With privileged set it uses raw
// sockets, which need root or CAP_NET_RAW; otherwise it sends unprivileged
// UDP pings.
func NewICMP(privileged bool) *ICMPProber {
	return &ICMPProber{privileged: privileged}
}

func (p *ICMPProber) Probe(ctx context.Context, addr string, timeout time.Duration) (bool, error) {
	pinger, err := probing.NewPinger(addr)
	if err != nil {
		return false, err
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(p.privileged)

	if err := pinger.RunWithContext(ctx); err != nil {
		return false, err
	}
	return pinger.Statistics().PacketsRecv > 0, nil
}
