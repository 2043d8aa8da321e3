// Package sweep discovers live hosts on a /24-style IPv4 range. It probes
// every candidate address in bounded-concurrency batches, correlates the
// addresses that answered with hardware addresses from the OS neighbor table
// and optionally enriches each device with a vendor name.
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/kakeetopius/gsweep/internal/net/neigh"
	"github.com/kakeetopius/gsweep/internal/net/probe"
	"github.com/kakeetopius/gsweep/internal/vendors"
	"github.com/projectdiscovery/gologger"
)

// Device is one discovered host. MAC stays empty when the neighbor table had
// no entry for the address in time; Vendor stays empty unless vendor querying
// is enabled and the lookup knew the prefix. Both are normal states, not
// errors.
type Device struct {
	IP     string `json:"ip"`
	MAC    string `json:"mac,omitempty"`
	Vendor string `json:"vendor,omitempty"`
}

// Options configures one Run call. The zero value scans the local network with
// defaults and no vendor querying.
type Options struct {
	// Network is the 3-octet prefix to sweep, e.g. "192.168.1". When empty the
	// prefix is derived from the host's primary IPv4 address.
	Network string
	// QueryVendors enables the vendor-enrichment phase.
	QueryVendors bool
	// PingTimeout bounds each individual probe. Default 2500ms.
	PingTimeout time.Duration
	// QueryVendorsTimeout bounds the whole vendor-enrichment phase. Default 60s.
	QueryVendorsTimeout time.Duration
	// BatchSize bounds the number of concurrently outstanding probes. Default 50.
	BatchSize int
	// ClearVendorsCache wipes the scanner's vendor cache before enrichment.
	ClearVendorsCache bool
	// Logger receives progress and degradation notices. Nil logs through
	// gologger to the process's standard streams.
	Logger Logger
	// Progress, when set, is called after every settled batch with the number
	// of addresses probed so far and the total.
	Progress func(done, total int)
}

const (
	defaultPingTimeout    = 2500 * time.Millisecond
	defaultVendorsTimeout = 60 * time.Second
	defaultBatchSize      = 50
)

func (o Options) withDefaults() Options {
	if o.PingTimeout <= 0 {
		o.PingTimeout = defaultPingTimeout
	}
	if o.QueryVendorsTimeout <= 0 {
		o.QueryVendorsTimeout = defaultVendorsTimeout
	}
	if o.BatchSize < 1 {
		o.BatchSize = defaultBatchSize
	}
	if o.Logger == nil {
		o.Logger = defaultLogger{}
	}
	return o
}

// Logger is the sink for scan-progress and degradation notices. It never
// influences results.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

type defaultLogger struct{}

func (defaultLogger) Info(msg string)  { gologger.Info().Msg(msg) }
func (defaultLogger) Error(msg string) { gologger.Error().Msg(msg) }

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(string)  {}
func (NopLogger) Error(string) {}

// Scanner runs sweeps. The vendor cache lives on the scanner, so devices
// resolved in one Run answer from cache in the next until ClearVendorsCache is
// requested or the scanner is dropped.
type Scanner struct {
	prober  probe.Prober
	table   neigh.Reader
	vendors *vendors.Resolver
}

// New builds a Scanner from its collaborators. Nil arguments select the
// platform defaults: an unprivileged ICMP prober, the OS neighbor-table reader
// and a remote vendor resolver.
func New(prober probe.Prober, table neigh.Reader, resolver *vendors.Resolver) *Scanner {
	if prober == nil {
		prober = probe.NewICMP(false)
	}
	if table == nil {
		table = neigh.NewReader()
	}
	if resolver == nil {
		resolver = vendors.NewResolver()
	}
	return &Scanner{prober: prober, table: table, vendors: resolver}
}

// Run sweeps the range and returns the discovered devices in ascending
// last-octet order. Only option-validation failures surface as errors; every
// later phase degrades to partial data instead of failing the scan. Cancelling
// ctx stops scheduling further batches, skips the enrichment phases and
// returns ctx.Err() alongside whatever was found.
func (s *Scanner) Run(ctx context.Context, opts Options) ([]Device, error) {
	opts = opts.withDefaults()

	prefix := opts.Network
	if prefix == "" {
		derived, err := LocalPrefix()
		if err != nil {
			return nil, err
		}
		prefix = derived
	}

	addrs, err := expand(prefix)
	if err != nil {
		return nil, err
	}

	devices, probeErr := s.probeAll(ctx, addrs, opts)
	if probeErr != nil {
		return devices, probeErr
	}

	s.mergeNeighbors(prefix, devices, opts.Logger)

	if opts.QueryVendors {
		s.enrichVendors(ctx, devices, opts)
	}

	return devices, nil
}

// mergeNeighbors assigns hardware addresses from the neighbor table. A read
// failure is logged and swallowed; addresses the table does not know keep an
// empty MAC.
func (s *Scanner) mergeNeighbors(prefix string, devices []Device, log Logger) {
	table, err := s.table.Table(prefix)
	if err != nil {
		log.Error(fmt.Sprintf("reading neighbor table: %v, devices will have no hardware addresses", err))
		return
	}
	for i := range devices {
		if mac, ok := table[devices[i].IP]; ok {
			devices[i].MAC = mac
		}
	}
}

func (s *Scanner) enrichVendors(ctx context.Context, devices []Device, opts Options) {
	if opts.ClearVendorsCache {
		s.vendors.ClearCache()
	}

	vctx, cancel := context.WithTimeout(ctx, opts.QueryVendorsTimeout)
	defer cancel()

	for i := range devices {
		if devices[i].MAC == "" {
			continue
		}
		devices[i].Vendor = s.vendors.Resolve(vctx, devices[i].MAC)
	}
}
