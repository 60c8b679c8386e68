package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Client        ClientConfig        `mapstructure:"client"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ClientConfig tunes the daemon connection. The endpoint itself is fixed per
// platform and is not configurable.
type ClientConfig struct {
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	ReconnectDelay time.Duration `mapstructure:"reconnect_delay"`
	WatchTimeout   time.Duration `mapstructure:"watch_timeout"`
}

type ObservabilityConfig struct {
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	MetricsAddr    string `mapstructure:"metrics_addr"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	OTLPProtocol   string `mapstructure:"otlp_protocol"`
	ServiceName    string `mapstructure:"service_name"`
	ServiceVersion string `mapstructure:"service_version"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.connect_timeout", Defaults.ConnectTimeout)
	v.SetDefault("client.reconnect_delay", Defaults.ReconnectDelay)
	v.SetDefault("client.watch_timeout", Defaults.WatchTimeout)

	v.SetDefault("observability.log_level", Defaults.LogLevel)
	v.SetDefault("observability.log_format", Defaults.LogFormat)
	v.SetDefault("observability.metrics_addr", "")
	v.SetDefault("observability.otlp_endpoint", "")
	v.SetDefault("observability.otlp_protocol", Defaults.OTLPProtocol)
	v.SetDefault("observability.service_name", Defaults.ServiceName)
	v.SetDefault("observability.service_version", Defaults.ServiceVersion)
}

// Validate rejects values the client cannot run with.
func (c Config) Validate() error {
	for name, d := range map[string]time.Duration{
		"client.connect_timeout": c.Client.ConnectTimeout,
		"client.reconnect_delay": c.Client.ReconnectDelay,
		"client.watch_timeout":   c.Client.WatchTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	switch c.Observability.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("observability.log_format must be text or json, got %q", c.Observability.LogFormat)
	}
	switch c.Observability.OTLPProtocol {
	case "http", "grpc":
	default:
		return fmt.Errorf("observability.otlp_protocol must be http or grpc, got %q", c.Observability.OTLPProtocol)
	}
	return nil
}
