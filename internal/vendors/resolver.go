// Package vendors resolves the manufacturer name behind a hardware address
// prefix, memoizing results for the lifetime of the Resolver.
package vendors

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/endobit/oui"
	"github.com/kakeetopius/gsweep/internal/netutils"
	"github.com/projectdiscovery/gcache"
)

// DefaultAPIURL is the remote lookup endpoint: GET <url>/<mac> answers with
// the vendor name as a plain-text body.
const DefaultAPIURL = "https://api.macvendors.com"

const defaultCacheSize = 1024

// LookupFunc performs one remote vendor lookup for a normalized mac. An empty
// name with a nil error is a valid "queried, vendor unknown" answer.
type LookupFunc func(ctx context.Context, mac string) (string, error)

// Resolver memoizes vendor lookups per normalized hardware address. A cached
// empty string means a previous query found no vendor; it is served from cache
// without retrying, so a flaky or rate-limited endpoint is hit at most once
// per mac per Resolver lifetime.
type Resolver struct {
	cache   gcache.Cache[string, string]
	lookup  LookupFunc
	offline bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookup replaces the remote lookup call.
func WithLookup(fn LookupFunc) Option {
	return func(r *Resolver) { r.lookup = fn }
}

// WithOffline answers every lookup from the compiled-in IEEE OUI database and
// never touches the network.
func WithOffline() Option {
	return func(r *Resolver) { r.offline = true }
}

// WithAPIURL points the default remote lookup at a different endpoint.
func WithAPIURL(url string) Option {
	return func(r *Resolver) { r.lookup = httpLookup(url) }
}

// NewResolver builds a Resolver with an empty cache.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		cache:  gcache.New[string, string](defaultCacheSize).LRU().Build(),
		lookup: httpLookup(DefaultAPIURL),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the vendor name for a hardware address, consulting the cache
// first. Lookup failures degrade to the offline OUI database and whatever that
// yields, possibly "", is cached like any other answer. Resolve never fails;
// unknown is "".
func (r *Resolver) Resolve(ctx context.Context, mac string) string {
	key := netutils.NormalizeMAC(mac)
	if key == "" {
		return ""
	}

	if cached, err := r.cache.Get(key); err == nil {
		return cached
	}

	var name string
	if r.offline {
		name = ouiVendor(key)
	} else {
		remote, err := r.lookup(ctx, key)
		if err != nil {
			name = ouiVendor(key)
		} else {
			name = remote
		}
	}

	_ = r.cache.Set(key, name)
	return name
}

// ClearCache drops every memoized vendor.
func (r *Resolver) ClearCache() {
	r.cache.Purge()
}

// ouiVendor consults the compiled-in IEEE OUI database. The database expects
// separator-delimited addresses, so the normalized key is re-colonized first.
func ouiVendor(key string) string {
	if len(key) != 12 {
		return ""
	}
	parts := make([]string, 0, 6)
	for i := 0; i < 12; i += 2 {
		parts = append(parts, key[i:i+2])
	}
	return oui.Vendor(strings.Join(parts, ":"))
}

func httpLookup(baseURL string) LookupFunc {
	client := &http.Client{Timeout: 10 * time.Second}
	return func(ctx context.Context, mac string) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/"+mac, nil)
		if err != nil {
			return "", err
		}
		resp, err := client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			body, err := io.ReadAll(io.LimitReader(resp.Body, 512))
			if err != nil {
				return "", err
			}
			return strings.TrimSpace(string(body)), nil
		case http.StatusNotFound:
			// the endpoint answers 404 for prefixes it has no record of,
			// which is a definitive "unknown" rather than a failure
			return "", nil
		default:
			return "", fmt.Errorf("vendor api returned status %d", resp.StatusCode)
		}
	}
}
