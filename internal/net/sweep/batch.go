package sweep

import (
	"context"
	"sync"
	"time"
)

// chunk partitions addrs into consecutive groups of at most size elements,
// preserving order. The last group may be shorter.
func chunk(addrs []string, size int) [][]string {
	groups := make([][]string, 0, (len(addrs)+size-1)/size)
	for start := 0; start < len(addrs); start += size {
		end := start + size
		if end > len(addrs) {
			end = len(addrs)
		}
		groups = append(groups, addrs[start:end])
	}
	return groups
}

// probeAll sweeps the address list batch by batch. Batches run strictly in
// sequence; within a batch every address is probed on its own goroutine, so at
// most BatchSize probes are outstanding at once. Each result lands in the slot
// matching the address's position, which keeps the output in address order no
// matter which probe settles first.
func (s *Scanner) probeAll(ctx context.Context, addrs []string, opts Options) ([]Device, error) {
	alive := make([]bool, len(addrs))

	offset := 0
	for _, group := range chunk(addrs, opts.BatchSize) {
		if err := ctx.Err(); err != nil {
			return collect(addrs, alive), err
		}

		var wg sync.WaitGroup
		for i, addr := range group {
			wg.Add(1)
			go func(slot int, ip string) {
				defer wg.Done()
				alive[slot] = s.probeOne(ctx, ip, opts.PingTimeout)
			}(offset+i, addr)
		}
		wg.Wait()

		offset += len(group)
		if opts.Progress != nil {
			opts.Progress(offset, len(addrs))
		}
	}

	return collect(addrs, alive), nil
}

// probeOne races the prober against a hard timeout. Probe errors and timeouts
// are indistinguishable from "not alive"; nothing here is ever fatal to the
// scan. A probe that outlives the timeout keeps running detached and its
// answer is discarded.
func (s *Scanner) probeOne(ctx context.Context, addr string, timeout time.Duration) bool {
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	settled := make(chan bool, 1)
	go func() {
		up, err := s.prober.Probe(tctx, addr, timeout)
		settled <- err == nil && up
	}()

	select {
	case up := <-settled:
		return up
	case <-tctx.Done():
		return false
	}
}

func collect(addrs []string, alive []bool) []Device {
	var devices []Device
	for i, addr := range addrs {
		if alive[i] {
			devices = append(devices, Device{IP: addr})
		}
	}
	return devices
}
