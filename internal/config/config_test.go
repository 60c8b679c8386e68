package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load with no config file should not error, got: %v", err)
	}

	if cfg.Client.ConnectTimeout != 10*time.Second {
		t.Errorf("Client.ConnectTimeout = %s, want 10s", cfg.Client.ConnectTimeout)
	}
	if cfg.Client.ReconnectDelay != 3*time.Second {
		t.Errorf("Client.ReconnectDelay = %s, want 3s", cfg.Client.ReconnectDelay)
	}
	if cfg.Client.WatchTimeout != time.Hour {
		t.Errorf("Client.WatchTimeout = %s, want 1h", cfg.Client.WatchTimeout)
	}
	if cfg.Observability.LogLevel != "warn" {
		t.Errorf("Observability.LogLevel = %q, want warn", cfg.Observability.LogLevel)
	}
	if cfg.Observability.LogFormat != "text" {
		t.Errorf("Observability.LogFormat = %q, want text", cfg.Observability.LogFormat)
	}
	if cfg.Observability.MetricsAddr != "" {
		t.Errorf("Observability.MetricsAddr = %q, want empty", cfg.Observability.MetricsAddr)
	}
	if cfg.Observability.ServiceName != "mullvad-rpc" {
		t.Errorf("Observability.ServiceName = %q, want mullvad-rpc", cfg.Observability.ServiceName)
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	t.Setenv("MULLVAD_RPC_CLIENT_CONNECT_TIMEOUT", "2s")
	t.Setenv("MULLVAD_RPC_OBSERVABILITY_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load with env overrides should not error, got: %v", err)
	}
	if cfg.Client.ConnectTimeout != 2*time.Second {
		t.Errorf("Client.ConnectTimeout = %s, want 2s (from env)", cfg.Client.ConnectTimeout)
	}
	if cfg.Observability.LogLevel != "debug" {
		t.Errorf("Observability.LogLevel = %q, want debug (from env)", cfg.Observability.LogLevel)
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "mullvad-rpc.yaml")
	content := `
client:
  connect_timeout: 5s
  reconnect_delay: 500ms
observability:
  log_format: json
  metrics_addr: 127.0.0.1:9464
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(viper.New(), configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Client.ConnectTimeout != 5*time.Second {
		t.Errorf("Client.ConnectTimeout = %s, want 5s", cfg.Client.ConnectTimeout)
	}
	if cfg.Client.ReconnectDelay != 500*time.Millisecond {
		t.Errorf("Client.ReconnectDelay = %s, want 500ms", cfg.Client.ReconnectDelay)
	}
	if cfg.Client.WatchTimeout != time.Hour {
		t.Errorf("Client.WatchTimeout = %s, want default 1h", cfg.Client.WatchTimeout)
	}
	if cfg.Observability.LogFormat != "json" {
		t.Errorf("Observability.LogFormat = %q, want json", cfg.Observability.LogFormat)
	}
	if cfg.Observability.MetricsAddr != "127.0.0.1:9464" {
		t.Errorf("Observability.MetricsAddr = %q", cfg.Observability.MetricsAddr)
	}
}

func TestLoadSearchPaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("client:\n  watch_timeout: 10m\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(viper.New(), "", dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Client.WatchTimeout != 10*time.Minute {
		t.Errorf("Client.WatchTimeout = %s, want 10m", cfg.Client.WatchTimeout)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Client: ClientConfig{ConnectTimeout: time.Second, ReconnectDelay: time.Second, WatchTimeout: time.Second},
			Observability: ObservabilityConfig{
				LogFormat:    "text",
				OTLPProtocol: "http",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero connect timeout", func(c *Config) { c.Client.ConnectTimeout = 0 }, "client.connect_timeout"},
		{"negative reconnect delay", func(c *Config) { c.Client.ReconnectDelay = -time.Second }, "client.reconnect_delay"},
		{"zero watch timeout", func(c *Config) { c.Client.WatchTimeout = 0 }, "client.watch_timeout"},
		{"bad log format", func(c *Config) { c.Observability.LogFormat = "xml" }, "log_format"},
		{"bad otlp protocol", func(c *Config) { c.Observability.OTLPProtocol = "udp" }, "otlp_protocol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}
