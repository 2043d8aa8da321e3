package notify

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/kakeetopius/gsweep/internal/net/sweep"
)

func testReport(deviceCount int) Report {
	devices := make([]sweep.Device, 0, deviceCount)
	for i := 0; i < deviceCount; i++ {
		devices = append(devices, sweep.Device{
			IP:     fmt.Sprintf("192.168.1.%d", i+1),
			MAC:    "aa11bb22cc33",
			Vendor: "Acme",
		})
	}
	return Report{
		Network:  "192.168.1",
		Devices:  devices,
		Duration: 3200 * time.Millisecond,
		When:     time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestReportSubject(t *testing.T) {
	subject := testReport(3).Subject()
	if !strings.Contains(subject, "3 host(s)") || !strings.Contains(subject, "192.168.1.0/24") {
		t.Errorf("unexpected subject %q", subject)
	}
}

func TestReportBodyListsEveryDevice(t *testing.T) {
	report := testReport(4)
	body := report.Body()

	for _, dev := range report.Devices {
		if !strings.Contains(body, dev.IP) {
			t.Errorf("body is missing device %s:\n%s", dev.IP, body)
		}
	}
	if !strings.Contains(body, "Hosts found: 4") {
		t.Errorf("body is missing the host count:\n%s", body)
	}
}

func TestReportSummaryTruncatesLongDeviceLists(t *testing.T) {
	summary := testReport(40).Summary()

	if !strings.Contains(summary, "192.168.1.25") {
		t.Errorf("summary should list the first 25 devices:\n%s", summary)
	}
	if strings.Contains(summary, "192.168.1.26") {
		t.Errorf("summary should stop after 25 devices:\n%s", summary)
	}
	if !strings.Contains(summary, "and 15 more") {
		t.Errorf("summary should mention the truncated remainder:\n%s", summary)
	}
}

func TestSinkConfigValidation(t *testing.T) {
	if _, err := NewMailSink(MailConfig{}); err == nil {
		t.Error("NewMailSink must reject an empty config")
	}
	if _, err := NewDiscordSink(DiscordConfig{}); err == nil {
		t.Error("NewDiscordSink must reject an empty config")
	}
	if _, err := NewMailSink(MailConfig{Host: "smtp.lan", From: "scan@lan", To: []string{"ops@lan"}}); err != nil {
		t.Errorf("NewMailSink rejected a valid config: %v", err)
	}
	if _, err := NewDiscordSink(DiscordConfig{WebhookID: "1", WebhookToken: "t"}); err != nil {
		t.Errorf("NewDiscordSink rejected a valid config: %v", err)
	}
}
