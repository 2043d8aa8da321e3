package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	// point the implicit search at an empty directory
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Scan.PingTimeoutMS != 2500 {
		t.Errorf("ping timeout default = %d, want 2500", cfg.Scan.PingTimeoutMS)
	}
	if cfg.Scan.VendorsTimeoutMS != 60000 {
		t.Errorf("vendors timeout default = %d, want 60000", cfg.Scan.VendorsTimeoutMS)
	}
	if cfg.Scan.BatchSize != 50 {
		t.Errorf("batch size default = %d, want 50", cfg.Scan.BatchSize)
	}
	if cfg.Scan.Probe != "icmp" {
		t.Errorf("probe default = %q, want icmp", cfg.Scan.Probe)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `scan:
  ping_timeout_ms: 1000
  batch_size: 25
  probe: arp
  iface: eth1
vendors:
  offline: true
notify:
  mail:
    host: smtp.lan
    port: 587
    from: scan@lan
    to:
      - ops@lan
  discord:
    webhook_id: "12345"
    webhook_token: secret
`
	path := filepath.Join(t.TempDir(), "gsweep.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Scan.PingTimeoutMS != 1000 {
		t.Errorf("ping timeout = %d, want 1000", cfg.Scan.PingTimeoutMS)
	}
	if cfg.Scan.BatchSize != 25 {
		t.Errorf("batch size = %d, want 25", cfg.Scan.BatchSize)
	}
	if cfg.Scan.Probe != "arp" || cfg.Scan.Iface != "eth1" {
		t.Errorf("probe config = %q on %q, want arp on eth1", cfg.Scan.Probe, cfg.Scan.Iface)
	}
	// unset keys keep their defaults
	if cfg.Scan.VendorsTimeoutMS != 60000 {
		t.Errorf("vendors timeout = %d, want the 60000 default", cfg.Scan.VendorsTimeoutMS)
	}
	if !cfg.Vendors.Offline {
		t.Error("vendors.offline should be true")
	}
	if cfg.Notify.Mail.Host != "smtp.lan" || len(cfg.Notify.Mail.To) != 1 {
		t.Errorf("mail config not parsed: %+v", cfg.Notify.Mail)
	}
	if cfg.Notify.Discord.WebhookID != "12345" {
		t.Errorf("discord config not parsed: %+v", cfg.Notify.Discord)
	}
}

func TestLoadRejectsMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load must fail for an explicitly named file that does not exist")
	}
}
