package sweep

import (
	"errors"
	"fmt"
	"testing"
)

func TestExpand(t *testing.T) {
	addrs, err := expand("10.0.0")
	if err != nil {
		t.Fatalf("expand returned error: %v", err)
	}
	if len(addrs) != 255 {
		t.Fatalf("expected 255 addresses, got %d", len(addrs))
	}
	if addrs[0] != "10.0.0.0" {
		t.Errorf("first address = %q, want 10.0.0.0", addrs[0])
	}
	if addrs[254] != "10.0.0.254" {
		t.Errorf("last address = %q, want 10.0.0.254", addrs[254])
	}
	for i, addr := range addrs {
		if want := fmt.Sprintf("10.0.0.%d", i); addr != want {
			t.Fatalf("address at %d = %q, want %q", i, addr, want)
		}
	}
}

func TestExpandRejectsMalformedPrefixes(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "too few octets", prefix: "10.0"},
		{name: "too many octets", prefix: "10.0.0.1"},
		{name: "non numeric octet", prefix: "10.zero.0"},
		{name: "octet out of range", prefix: "300.1.2"},
		{name: "negative octet", prefix: "10.-1.0"},
		{name: "empty", prefix: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := expand(tt.prefix)
			if !errors.Is(err, ErrInvalidNetworkFormat) {
				t.Errorf("expand(%q) error = %v, want ErrInvalidNetworkFormat", tt.prefix, err)
			}
		})
	}
}
