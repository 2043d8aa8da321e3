// Package argparser provides command-line parsing utilites for subcommands
package argparser

import (
	"context"

	"github.com/urfave/cli/v3"
)

// GetCommand returns a command struct containing the context about the command line flags and arguments the user has passed.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:                  "gsweep",
		Usage:                 "A simple command line tool to discover the devices connected to a local network.",
		Authors:               []any{"Kakeeto Pius"},
		EnableShellCompletion: true,

		Commands: []*cli.Command{
			{
				Name:    "scan",
				Aliases: []string{"s"},
				Usage:   "sweep a /24-style network with reachability probes and list the devices that answered.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "network",
						Aliases: []string{"n"},
						Usage:   "The first three octets of the network to sweep, eg 192.168.1. Defaults to the network of the host's primary address.",
					},
					&cli.BoolFlag{
						Name:    "vendors",
						Aliases: []string{"V"},
						Usage:   "Resolve the manufacturer name of each discovered device from its hardware address.",
					},
					&cli.IntFlag{
						Name:    "ping-timeout",
						Value:   2500,
						Aliases: []string{"t"},
						Usage:   "Amount of time in milliseconds to wait for each probe's answer.",
					},
					&cli.IntFlag{
						Name:  "vendors-timeout",
						Value: 60000,
						Usage: "Overall time limit in milliseconds for vendor lookups.",
					},
					&cli.IntFlag{
						Name:    "batch-size",
						Value:   50,
						Aliases: []string{"b"},
						Usage:   "Number of probes allowed in flight at once.",
					},
					&cli.BoolFlag{
						Name:  "clear-vendor-cache",
						Usage: "Drop previously cached vendor names before querying.",
					},
					&cli.StringFlag{
						Name:  "probe",
						Value: "icmp",
						Usage: "Reachability probe strategy: icmp or arp. arp needs linux and root.",
					},
					&cli.StringFlag{
						Name:    "iface",
						Aliases: []string{"i"},
						Usage:   "A network interface to send arp probes from. Ignored for icmp probes.",
					},
					&cli.BoolFlag{
						Name:  "privileged",
						Usage: "Use raw-socket pings instead of unprivileged UDP pings.",
					},
					&cli.BoolFlag{
						Name:  "offline-vendors",
						Usage: "Answer vendor lookups from the built-in IEEE OUI database without network calls.",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Print the device list as JSON instead of a table.",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a gsweep.yaml config file.",
					},
					&cli.BoolFlag{
						Name:  "mail-report",
						Usage: "Email the scan report using the smtp settings from the config file.",
					},
					&cli.BoolFlag{
						Name:  "discord-report",
						Usage: "Post the scan summary to the discord webhook from the config file.",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Enable verbose logging.",
					},
				},
				Action: runScan,
			},

			{
				Name:    "ifaces",
				Aliases: []string{"if"},
				Usage:   "list the host's network interfaces with their addresses and wireless SSIDs.",
				Action: func(ctx context.Context, c *cli.Command) error {
					return runIfaces()
				},
			},
		},
	}
}
