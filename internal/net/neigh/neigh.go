// Package neigh reads the host's neighbor table, the OS-maintained mapping
// from IPv4 addresses to hardware addresses of recently contacted hosts on the
// local link. The read mechanism differs per OS (a netlink dump on Linux,
// parsing `arp -a` output elsewhere) and is selected at build time; callers see
// a single Reader contract.
package neigh

// Reader returns the ip -> mac portion of the neighbor table whose addresses
// fall under the given 3-octet network prefix. Hardware addresses are
// normalized to lowercase hex with no separators.
type Reader interface {
	Table(prefix string) (map[string]string, error)
}
