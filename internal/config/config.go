// Package config loads optional defaults for the CLI from a config file and
// GSWEEP_-prefixed environment variables. Flags given on the command line
// always win over anything loaded here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kakeetopius/gsweep/internal/notify"
	"github.com/kakeetopius/gsweep/internal/vendors"
	"github.com/spf13/viper"
)

// Config mirrors the gsweep.yaml layout.
type Config struct {
	Scan struct {
		PingTimeoutMS    int    `mapstructure:"ping_timeout_ms"`
		VendorsTimeoutMS int    `mapstructure:"vendors_timeout_ms"`
		BatchSize        int    `mapstructure:"batch_size"`
		Probe            string `mapstructure:"probe"`
		Iface            string `mapstructure:"iface"`
		Privileged       bool   `mapstructure:"privileged"`
	} `mapstructure:"scan"`

	Vendors struct {
		APIURL  string `mapstructure:"api_url"`
		Offline bool   `mapstructure:"offline"`
	} `mapstructure:"vendors"`

	Notify struct {
		Mail    notify.MailConfig    `mapstructure:"mail"`
		Discord notify.DiscordConfig `mapstructure:"discord"`
	} `mapstructure:"notify"`
}

// Load reads the config from path, or searches the working directory and
// $HOME/.config/gsweep for a gsweep.yaml when path is empty. A missing file is
// not an error; defaults are returned.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gsweep")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gsweep"))
		}
	}

	v.SetEnvPrefix("GSWEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("scan.ping_timeout_ms", 2500)
	v.SetDefault("scan.vendors_timeout_ms", 60000)
	v.SetDefault("scan.batch_size", 50)
	v.SetDefault("scan.probe", "icmp")
	v.SetDefault("vendors.api_url", vendors.DefaultAPIURL)

	// an explicitly named file must exist and parse; the implicit search may
	// simply find nothing
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
