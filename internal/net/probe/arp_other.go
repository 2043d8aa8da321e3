//go:build !linux

package probe

import "fmt"

func newARP(Config) (Prober, error) {
	return nil, fmt.Errorf("the arp probe strategy requires linux, use icmp instead")
}
