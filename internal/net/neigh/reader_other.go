//go:build !linux && !darwin && !windows

package neigh

import "fmt"

// NewReader returns a reader that always fails; the neighbor merge degrades to
// devices without hardware addresses on unsupported platforms.
func NewReader() Reader {
	return unsupportedReader{}
}

type unsupportedReader struct{}

func (unsupportedReader) Table(string) (map[string]string, error) {
	return nil, fmt.Errorf("neighbor table reads are not supported on this OS")
}
