package sweep

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestChunk(t *testing.T) {
	addrs := make([]string, 255)
	for i := range addrs {
		addrs[i] = fmt.Sprintf("10.0.0.%d", i)
	}

	tests := []struct {
		name       string
		size       int
		wantGroups int
		wantLast   int
	}{
		{name: "evenly divisible remainder", size: 10, wantGroups: 26, wantLast: 5},
		{name: "whole range in one group", size: 255, wantGroups: 1, wantLast: 255},
		{name: "larger than range", size: 1000, wantGroups: 1, wantLast: 255},
		{name: "single address groups", size: 1, wantGroups: 255, wantLast: 1},
		{name: "default size", size: 50, wantGroups: 6, wantLast: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := chunk(addrs, tt.size)
			if len(groups) != tt.wantGroups {
				t.Fatalf("chunk produced %d groups, want %d", len(groups), tt.wantGroups)
			}
			if got := len(groups[len(groups)-1]); got != tt.wantLast {
				t.Errorf("last group has %d addresses, want %d", got, tt.wantLast)
			}
			// regrouping must preserve the original order
			i := 0
			for _, group := range groups {
				for _, addr := range group {
					if addr != addrs[i] {
						t.Fatalf("address %d = %q, want %q", i, addr, addrs[i])
					}
					i++
				}
			}
		})
	}
}

func TestProbeAllBoundsConcurrency(t *testing.T) {
	prober := &fakeProber{
		alive: map[string]bool{"10.0.0.3": true, "10.0.0.200": true},
		delay: time.Millisecond,
	}
	scanner := New(prober, &fakeTable{}, nil)

	addrs, err := expand("10.0.0")
	if err != nil {
		t.Fatal(err)
	}

	batches := 0
	devices, err := scanner.probeAll(context.Background(), addrs, Options{
		BatchSize:   10,
		PingTimeout: time.Second,
		Progress:    func(done, total int) { batches++ },
	}.withDefaults())
	if err != nil {
		t.Fatalf("probeAll returned error: %v", err)
	}

	if prober.calls != 255 {
		t.Errorf("prober called %d times, want 255", prober.calls)
	}
	if prober.maxInFlight > 10 {
		t.Errorf("max concurrent probes = %d, want at most 10", prober.maxInFlight)
	}
	if batches != 26 {
		t.Errorf("ran %d batches, want 26", batches)
	}
	if len(devices) != 2 || devices[0].IP != "10.0.0.3" || devices[1].IP != "10.0.0.200" {
		t.Errorf("devices out of order or missing: %+v", devices)
	}
}

func TestProbeOneEnforcesTimeout(t *testing.T) {
	prober := &fakeProber{block: true}
	scanner := New(prober, &fakeTable{}, nil)

	started := time.Now()
	alive := scanner.probeOne(context.Background(), "10.0.0.1", 50*time.Millisecond)
	elapsed := time.Since(started)

	if alive {
		t.Error("a probe that never answers must count as absent")
	}
	if elapsed > 2*time.Second {
		t.Errorf("probeOne took %v, the timeout should have fired after ~50ms", elapsed)
	}
}

func TestProbeAllTimeoutDoesNotStallNextBatch(t *testing.T) {
	prober := &fakeProber{block: true}
	scanner := New(prober, &fakeTable{}, nil)

	addrs := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"}
	started := time.Now()
	devices, err := scanner.probeAll(context.Background(), addrs, Options{
		BatchSize:   2,
		PingTimeout: 50 * time.Millisecond,
	}.withDefaults())
	if err != nil {
		t.Fatalf("probeAll returned error: %v", err)
	}
	elapsed := time.Since(started)

	if len(devices) != 0 {
		t.Errorf("got %d devices from probes that never answered", len(devices))
	}
	// two batches bounded by one timeout each, plus scheduling slack
	if elapsed > 2*time.Second {
		t.Errorf("probeAll took %v for 2 batches with a 50ms timeout", elapsed)
	}
}
