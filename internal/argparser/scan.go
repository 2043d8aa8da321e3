package argparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kakeetopius/gsweep/internal/config"
	"github.com/kakeetopius/gsweep/internal/net/neigh"
	"github.com/kakeetopius/gsweep/internal/net/probe"
	"github.com/kakeetopius/gsweep/internal/net/sweep"
	"github.com/kakeetopius/gsweep/internal/notify"
	"github.com/kakeetopius/gsweep/internal/vendors"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

func runScan(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	network := cmd.String("network")
	if network == "" {
		network, err = sweep.LocalPrefix()
		if err != nil {
			return err
		}
	}

	prober, err := probe.New(probe.Config{
		Kind:       flagString(cmd, "probe", cfg.Scan.Probe),
		Network:    network,
		Interface:  flagString(cmd, "iface", cfg.Scan.Iface),
		Privileged: cmd.Bool("privileged") || cfg.Scan.Privileged,
	})
	if err != nil {
		return err
	}
	if closer, ok := prober.(io.Closer); ok {
		defer closer.Close()
	}

	var resolverOpts []vendors.Option
	if cmd.Bool("offline-vendors") || cfg.Vendors.Offline {
		resolverOpts = append(resolverOpts, vendors.WithOffline())
	} else if cfg.Vendors.APIURL != "" && cfg.Vendors.APIURL != vendors.DefaultAPIURL {
		resolverOpts = append(resolverOpts, vendors.WithAPIURL(cfg.Vendors.APIURL))
	}

	scanner := sweep.New(prober, neigh.NewReader(), vendors.NewResolver(resolverOpts...))

	opts := sweep.Options{
		Network:             network,
		QueryVendors:        cmd.Bool("vendors"),
		PingTimeout:         time.Duration(flagInt(cmd, "ping-timeout", cfg.Scan.PingTimeoutMS)) * time.Millisecond,
		QueryVendorsTimeout: time.Duration(flagInt(cmd, "vendors-timeout", cfg.Scan.VendorsTimeoutMS)) * time.Millisecond,
		BatchSize:           flagInt(cmd, "batch-size", cfg.Scan.BatchSize),
		ClearVendorsCache:   cmd.Bool("clear-vendor-cache"),
	}

	jsonOut := cmd.Bool("json")
	var bar *pterm.ProgressbarPrinter
	if !jsonOut {
		pterm.Info.Println("Probing hosts on network " + network + ".0/24")
		bar, err = pterm.DefaultProgressbar.WithTotal(255).Start()
		if err != nil {
			fmt.Println(err)
		}
		if bar != nil {
			opts.Progress = func(done, total int) {
				bar.Add(done - bar.Current)
			}
		}
	}

	started := time.Now()
	devices, err := scanner.Run(ctx, opts)
	if bar != nil {
		bar.Stop()
	}
	if err != nil {
		return err
	}

	if jsonOut {
		if err := sweep.RenderJSON(os.Stdout, devices); err != nil {
			return err
		}
	} else {
		sweep.Render(devices, opts.QueryVendors)
	}

	sendReports(ctx, cmd, cfg, notify.Report{
		Network:  network,
		Devices:  devices,
		Duration: time.Since(started),
		When:     started,
	})
	return nil
}

// sendReports delivers the report to every requested sink. Failures are
// logged; a broken mail server or webhook never fails a finished scan.
func sendReports(ctx context.Context, cmd *cli.Command, cfg *config.Config, report notify.Report) {
	var sinks []notify.Sink

	if cmd.Bool("mail-report") {
		sink, err := notify.NewMailSink(cfg.Notify.Mail)
		if err != nil {
			gologger.Error().Msgf("mail report: %s", err)
		} else {
			sinks = append(sinks, sink)
		}
	}
	if cmd.Bool("discord-report") {
		sink, err := notify.NewDiscordSink(cfg.Notify.Discord)
		if err != nil {
			gologger.Error().Msgf("discord report: %s", err)
		} else {
			sinks = append(sinks, sink)
		}
	}

	for _, sink := range sinks {
		sctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if err := sink.Send(sctx, report); err != nil {
			gologger.Error().Msgf("sending scan report: %s", err)
		}
		cancel()
	}
}

func flagInt(cmd *cli.Command, name string, configured int) int {
	if !cmd.IsSet(name) && configured > 0 {
		return configured
	}
	return cmd.Int(name)
}

func flagString(cmd *cli.Command, name string, configured string) string {
	if !cmd.IsSet(name) && configured != "" {
		return configured
	}
	return cmd.String(name)
}
