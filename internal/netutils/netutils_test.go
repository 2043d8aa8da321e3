package netutils

import (
	"net"
	"net/netip"
	"testing"
)

func TestNormalizeMAC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "colon separated uppercase", input: "AA:BB:CC:DD:EE:FF", want: "aabbccddeeff"},
		{name: "dash separated", input: "AA-BB-CC-DD-EE-FF", want: "aabbccddeeff"},
		{name: "underscore separated", input: "aa_bb_cc_dd_ee_ff", want: "aabbccddeeff"},
		{name: "space separated", input: "aa bb cc dd ee ff", want: "aabbccddeeff"},
		{name: "already normalized", input: "aabbccddeeff", want: "aabbccddeeff"},
		{name: "surrounding whitespace", input: "  aa:bb:cc:dd:ee:ff ", want: "aabbccddeeff"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeMAC(tt.input); got != tt.want {
				t.Errorf("NormalizeMAC(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetIfaceByIP(t *testing.T) {
	iface, err := GetIfaceByIP(netip.MustParseAddr("127.0.0.1"))
	if err != nil {
		t.Fatalf("GetIfaceByIP returned error: %v", err)
	}
	if iface.Flags&net.FlagLoopback == 0 {
		t.Errorf("GetIfaceByIP(127.0.0.1) picked %s, want the loopback interface", iface.Name)
	}
}

func TestGetIfaceByIPRejectsUnreachableNetwork(t *testing.T) {
	// TEST-NET-3, never assigned to a local interface
	if _, err := GetIfaceByIP(netip.MustParseAddr("203.0.113.9")); err == nil {
		t.Error("expected an error for a network no interface is attached to")
	}
}

func TestVerifyandGetIfaceDetailsRejectsLoopback(t *testing.T) {
	allIfaces, err := net.Interfaces()
	if err != nil {
		t.Fatal(err)
	}
	for _, iface := range allIfaces {
		if iface.Flags&net.FlagLoopback == 0 {
			continue
		}
		if _, err := VerifyandGetIfaceDetails(&iface); err == nil {
			t.Errorf("VerifyandGetIfaceDetails accepted loopback interface %s", iface.Name)
		}
		return
	}
	t.Skip("no loopback interface on this host")
}

func TestPrefixOf(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{name: "private address", addr: "192.168.1.42", want: "192.168.1"},
		{name: "low octets", addr: "10.0.0.1", want: "10.0.0"},
		{name: "ipv6 yields nothing", addr: "fe80::1", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := netip.MustParseAddr(tt.addr)
			if got := PrefixOf(addr); got != tt.want {
				t.Errorf("PrefixOf(%v) = %q, want %q", addr, got, tt.want)
			}
		})
	}
}
