package neigh

import (
	"bufio"
	"net"
	"strings"

	"github.com/kakeetopius/gsweep/internal/netutils"
)

// parseBSDTable parses `arp -a` output as printed on macOS and the BSDs:
//
//	host.lan (192.168.1.1) at aa:bb:cc:dd:ee:ff on en0 ifscope [ethernet]
//	? (192.168.1.7) at (incomplete) on en0 ifscope [ethernet]
func parseBSDTable(output, prefix string) map[string]string {
	table := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ipStart := strings.Index(line, "(")
		ipEnd := strings.Index(line, ")")
		if ipStart == -1 || ipEnd == -1 || ipStart >= ipEnd {
			continue
		}
		ipStr := line[ipStart+1 : ipEnd]

		atIndex := strings.Index(line, " at ")
		if atIndex == -1 {
			continue
		}
		macStr := line[atIndex+4:]
		if spaceIdx := strings.IndexAny(macStr, " ["); spaceIdx != -1 {
			macStr = macStr[:spaceIdx]
		}
		macStr = strings.TrimSpace(macStr)
		if macStr == "" || macStr == "(incomplete)" {
			continue
		}

		addEntry(table, ipStr, macStr, prefix)
	}
	return table
}

// parseWindowsTable parses `arp -a` output on Windows, which lists entries per
// interface section:
//
//	Interface: 192.168.1.100 --- 0xa
//	  Internet Address      Physical Address      Type
//	  192.168.1.1           aa-bb-cc-dd-ee-ff     dynamic
func parseWindowsTable(output, prefix string) map[string]string {
	table := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(output))

	inEntries := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.Contains(line, "Internet Address") && strings.Contains(line, "Physical Address") {
			inEntries = true
			continue
		}
		if strings.HasPrefix(line, "Interface:") {
			inEntries = false
			continue
		}
		if !inEntries {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ipStr, macStr := fields[0], fields[1]
		if macStr == "incomplete" || strings.EqualFold(macStr, "ff-ff-ff-ff-ff-ff") {
			continue
		}

		addEntry(table, ipStr, macStr, prefix)
	}
	return table
}

// addEntry validates one candidate entry and stores it normalized. Broadcast,
// multicast and out-of-range addresses are dropped here so the per-OS readers
// don't each repeat the checks.
func addEntry(table map[string]string, ipStr, macStr, prefix string) {
	if prefix != "" && !strings.HasPrefix(ipStr, prefix+".") {
		return
	}
	ip := net.ParseIP(ipStr)
	if ip == nil || ip.To4() == nil || ip.IsMulticast() {
		return
	}
	mac := netutils.NormalizeMAC(macStr)
	if len(mac) != 12 || mac == "000000000000" || mac == "ffffffffffff" {
		return
	}
	table[ipStr] = mac
}
