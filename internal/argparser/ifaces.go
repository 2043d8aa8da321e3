package argparser

import (
	"fmt"
	"strings"

	"github.com/kakeetopius/gsweep/internal/netutils"
	"github.com/pterm/pterm"
)

func runIfaces() error {
	ifaces, err := netutils.Interfaces()
	if err != nil {
		return err
	}
	ssids := netutils.WirelessSSIDs()

	tableData := pterm.TableData{{"Name", "IPv4 Address", "Mac Address", "State", "SSID"}}
	for _, iface := range ifaces {
		tableData = append(tableData, []string{
			iface.Name,
			iface.IPv4,
			iface.Mac,
			ifaceState(iface),
			ssids[iface.Name],
		})
	}

	fmt.Println()
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableData).Render()
}

func ifaceState(iface netutils.IfaceSummary) string {
	var states []string
	if iface.Up {
		states = append(states, "up")
	} else {
		states = append(states, "down")
	}
	if iface.Running {
		states = append(states, "running")
	}
	if iface.Loopback {
		states = append(states, "loopback")
	}
	return strings.Join(states, ",")
}
