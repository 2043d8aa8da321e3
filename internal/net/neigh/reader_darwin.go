//go:build darwin

package neigh

import (
	"fmt"
	"os/exec"
)

// NewReader returns a neighbor-table reader that parses `arp -a` output.
func NewReader() Reader {
	return &arpCommandReader{}
}

type arpCommandReader struct{}

func (r *arpCommandReader) Table(prefix string) (map[string]string, error) {
	output, err := exec.Command("arp", "-a").Output()
	if err != nil {
		return nil, fmt.Errorf("running arp -a: %w", err)
	}
	return parseBSDTable(string(output), prefix), nil
}
