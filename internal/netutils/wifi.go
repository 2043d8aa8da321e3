package netutils

import "github.com/mdlayher/wifi"

// WirelessSSIDs maps wireless interface names to the SSID they are associated
// with. Interfaces that are not wireless or not associated are absent. On
// platforms without nl80211 support the map is empty.
func WirelessSSIDs() map[string]string {
	ssids := make(map[string]string)

	client, err := wifi.New()
	if err != nil {
		return ssids
	}
	defer client.Close()

	ifaces, err := client.Interfaces()
	if err != nil {
		return ssids
	}
	for _, iface := range ifaces {
		if iface.Name == "" {
			continue
		}
		bss, err := client.BSS(iface)
		if err != nil || bss.SSID == "" {
			continue
		}
		ssids[iface.Name] = bss.SSID
	}
	return ssids
}
