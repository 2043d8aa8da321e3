//go:build linux

package probe

import (
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"net/netip"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/kakeetopius/gsweep/internal/netutils"
	"golang.org/x/sys/unix"
)

// replyPollInterval is how often Probe re-checks the reply set while waiting.
const replyPollInterval = 20 * time.Millisecond

// ARPProber checks reachability by broadcasting an ARP request for the target
// address and watching the wire for a matching reply. One raw AF_PACKET socket
// sends requests and one pcap handle captures replies for the prober's whole
// lifetime, so concurrent probes share both.
type ARPProber struct {
	iface    *netutils.IfaceDetails
	sockFD   int
	sockAddr *unix.SockaddrLinklayer
	handle   *pcap.Handle

	mu      sync.Mutex
	replies map[netip.Addr]struct{}

	closed chan struct{}
}

func newARP(cfg Config) (Prober, error) {
	var iface *net.Interface
	var err error
	switch {
	case cfg.Interface != "":
		iface, err = net.InterfaceByName(cfg.Interface)
	case cfg.Network != "":
		iface, err = networkIface(cfg.Network)
	default:
		iface, err = netutils.DefaultInterface()
	}
	if err != nil {
		return nil, err
	}

	details, err := netutils.VerifyandGetIfaceDetails(iface)
	if err != nil {
		return nil, err
	}

	sockFD, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, htons(unix.ETH_P_ARP))
	if err != nil {
		return nil, fmt.Errorf("opening packet socket: %w", err)
	}

	handle, err := pcap.OpenLive(iface.Name, 1600, false, time.Millisecond)
	if err != nil {
		unix.Close(sockFD)
		return nil, fmt.Errorf("opening capture handle on %v: %w", iface.Name, err)
	}
	if err := handle.SetBPFFilter("arp"); err != nil {
		handle.Close()
		unix.Close(sockFD)
		return nil, err
	}

	p := &ARPProber{
		iface:  details,
		sockFD: sockFD,
		sockAddr: &unix.SockaddrLinklayer{
			Ifindex:  iface.Index,
			Protocol: uint16(htons(unix.ETH_P_ARP)),
		},
		handle:  handle,
		replies: make(map[netip.Addr]struct{}),
		closed:  make(chan struct{}),
	}
	go p.capture()

	return p, nil
}

func (p *ARPProber) Probe(ctx context.Context, addr string, timeout time.Duration) (bool, error) {
	target, err := netip.ParseAddr(addr)
	if err != nil {
		return false, err
	}
	if target == p.iface.IfaceIP {
		// the kernel answers for its own address, no wire traffic to wait for
		return true, nil
	}
	if p.seen(target) {
		return true, nil
	}

	if err := p.sendRequest(target); err != nil {
		return false, err
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	tick := time.NewTicker(replyPollInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-deadline.C:
			return false, nil
		case <-tick.C:
			if p.seen(target) {
				return true, nil
			}
		}
	}
}

// Close stops the capture goroutine and releases the sockets.
func (p *ARPProber) Close() error {
	close(p.closed)
	p.handle.Close()
	return unix.Close(p.sockFD)
}

func (p *ARPProber) seen(addr netip.Addr) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.replies[addr]
	return ok
}

func (p *ARPProber) sendRequest(target netip.Addr) error {
	eth := &layers.Ethernet{
		SrcMAC:       p.iface.HardwareAddr,
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}

	arp := &layers.ARP{
		Operation:       layers.ARPRequest,
		AddrType:        layers.LinkTypeEthernet,
		Protocol:        layers.EthernetTypeIPv4,
		HwAddressSize:   6,
		ProtAddressSize: 4,

		SourceHwAddress:   p.iface.HardwareAddr,
		SourceProtAddress: p.iface.IfaceIP.AsSlice(),

		DstHwAddress:   net.HardwareAddr{0, 0, 0, 0, 0, 0},
		DstProtAddress: target.AsSlice(),
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{
		FixLengths:       true,
		ComputeChecksums: false,
	}
	if err := gopacket.SerializeLayers(buf, opts, eth, arp); err != nil {
		return err
	}

	return unix.Sendto(p.sockFD, buf.Bytes(), 0, p.sockAddr)
}

func (p *ARPProber) capture() {
	packetSource := gopacket.NewPacketSource(p.handle, p.handle.LinkType())
	packetChan := packetSource.Packets()

	for {
		select {
		case <-p.closed:
			return
		case packet, ok := <-packetChan:
			if !ok {
				return
			}
			arpLayer := packet.Layer(layers.LayerTypeARP)
			if arpLayer == nil {
				continue
			}
			arpPacket, _ := arpLayer.(*layers.ARP)
			if arpPacket.Operation != layers.ARPReply {
				continue
			}
			sender, ok := netip.AddrFromSlice(arpPacket.SourceProtAddress)
			if !ok || sender == p.iface.IfaceIP {
				continue
			}
			p.mu.Lock()
			p.replies[sender] = struct{}{}
			p.mu.Unlock()
		}
	}
}

// htons converts a short to network byte order for the AF_PACKET protocol
// argument.
func htons(num int) int {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(num))
	return int(binary.NativeEndian.Uint16(b[:]))
}
