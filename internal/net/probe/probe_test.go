package probe

import (
	"net"
	"testing"
)

func TestNewRejectsUnknownStrategy(t *testing.T) {
	if _, err := New(Config{Kind: "tcp"}); err == nil {
		t.Error("expected an error for an unknown probe strategy")
	}
}

func TestNewDefaultsToICMP(t *testing.T) {
	for _, kind := range []string{"", "icmp"} {
		prober, err := New(Config{Kind: kind})
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", kind, err)
		}
		if _, ok := prober.(*ICMPProber); !ok {
			t.Errorf("New(%q) = %T, want *ICMPProber", kind, prober)
		}
	}
}

func TestNetworkIfaceFindsAttachedInterface(t *testing.T) {
	iface, err := networkIface("127.0.0")
	if err != nil {
		t.Fatalf("networkIface returned error: %v", err)
	}
	if iface.Flags&net.FlagLoopback == 0 {
		t.Errorf("networkIface(127.0.0) picked %s, want the loopback interface", iface.Name)
	}
}
