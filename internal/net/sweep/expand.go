package sweep

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kakeetopius/gsweep/internal/netutils"
)

// hostCount is the number of candidate addresses in a sweep: last octets 0
// through 254. 255 is the broadcast address and is never probed.
const hostCount = 255

var (
	// ErrInvalidNetworkFormat means the supplied network was not exactly three
	// dot-separated octets.
	ErrInvalidNetworkFormat = errors.New("network must be the first three octets of an IPv4 address, e.g. 192.168.1")
	// ErrNoLocalAddress means no network was supplied and the host has no
	// usable IPv4 address to derive one from.
	ErrNoLocalAddress = errors.New("no usable local IPv4 address to derive the network from")
)

// expand turns a validated 3-octet prefix into the ordered candidate address
// list {prefix}.0 … {prefix}.254. Order is significant: it drives batch order
// and the final result ordering.
func expand(prefix string) ([]string, error) {
	if err := validatePrefix(prefix); err != nil {
		return nil, err
	}
	addrs := make([]string, 0, hostCount)
	for octet := 0; octet < hostCount; octet++ {
		addrs = append(addrs, fmt.Sprintf("%s.%d", prefix, octet))
	}
	return addrs, nil
}

func validatePrefix(prefix string) error {
	parts := strings.Split(prefix, ".")
	if len(parts) != 3 {
		return fmt.Errorf("%w: got %q", ErrInvalidNetworkFormat, prefix)
	}
	for _, part := range parts {
		octet, err := strconv.Atoi(part)
		if err != nil || octet < 0 || octet > 255 {
			return fmt.Errorf("%w: got %q", ErrInvalidNetworkFormat, prefix)
		}
	}
	return nil
}

// LocalPrefix derives the sweep prefix from the host's primary IPv4 address by
// dropping its last octet.
func LocalPrefix() (string, error) {
	addr, err := netutils.PrimaryIPv4()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoLocalAddress, err)
	}
	return netutils.PrefixOf(addr), nil
}
