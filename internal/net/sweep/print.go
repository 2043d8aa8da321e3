package sweep

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Render prints a boxed table with one row per device, then the totals.
func Render(devices []Device, withVendors bool) {
	if len(devices) == 0 {
		fmt.Println()
		pterm.Info.Println("No hosts found on that network.")
		return
	}

	fmt.Println()
	var tableData pterm.TableData
	if withVendors {
		tableData = pterm.TableData{{"IP Address", "Mac Address", "Vendor"}}
		for _, dev := range devices {
			tableData = append(tableData, []string{dev.IP, dev.MAC, dev.Vendor})
		}
	} else {
		tableData = pterm.TableData{{"IP Address", "Mac Address"}}
		for _, dev := range devices {
			tableData = append(tableData, []string{dev.IP, dev.MAC})
		}
	}
	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableData).Render()

	fmt.Println("\nHosts Found: ", len(devices))
}

// RenderJSON writes the device list as an indented JSON array.
func RenderJSON(w io.Writer, devices []Device) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(devices)
}
