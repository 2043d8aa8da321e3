//go:build linux

package neigh

import (
	"fmt"
	"strings"

	"github.com/jsimonetti/rtnetlink"
	"github.com/kakeetopius/gsweep/internal/netutils"
	"golang.org/x/sys/unix"
)

// NewReader returns a neighbor-table reader backed by a netlink RTM_GETNEIGH
// dump, the same source `ip neigh show` uses.
func NewReader() Reader {
	return &netlinkReader{}
}

type netlinkReader struct{}

func (r *netlinkReader) Table(prefix string) (map[string]string, error) {
	conn, err := rtnetlink.Dial(nil)
	if err != nil {
		return nil, fmt.Errorf("dialing rtnetlink: %w", err)
	}
	defer conn.Close()

	msgs, err := conn.Neigh.List()
	if err != nil {
		return nil, fmt.Errorf("dumping neighbor table: %w", err)
	}

	table := make(map[string]string)
	for _, msg := range msgs {
		if msg.Family != uint16(unix.AF_INET) {
			continue
		}
		// entries without a resolved link-layer address are useless here
		if msg.State&(unix.NUD_FAILED|unix.NUD_INCOMPLETE|unix.NUD_NOARP) != 0 {
			continue
		}
		if msg.Attributes == nil || msg.Attributes.Address == nil || len(msg.Attributes.LLAddress) == 0 {
			continue
		}

		ipStr := msg.Attributes.Address.String()
		if prefix != "" && !strings.HasPrefix(ipStr, prefix+".") {
			continue
		}
		mac := netutils.NormalizeMAC(msg.Attributes.LLAddress.String())
		if len(mac) != 12 || mac == "000000000000" {
			continue
		}
		table[ipStr] = mac
	}
	return table, nil
}
