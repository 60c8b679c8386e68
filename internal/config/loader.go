package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BindFlags registers the persistent client flags on cmd and binds them to v.
func BindFlags(cmd *cobra.Command, v *viper.Viper) {
	f := cmd.PersistentFlags()

	f.String("config", "", "config file path")
	f.Duration("connect-timeout", 0, "how long a connect attempt waits for the daemon (default 10s)")
	f.Duration("reconnect-delay", 0, "delay before retrying a failed connect (default 3s)")
	f.String("log-level", "", "log level (debug, info, warn, error)")
	f.String("log-format", "", "log format (json, text)")
	f.String("metrics-addr", "", "serve /metrics on this address while the command runs")
	f.String("otlp-endpoint", "", "export traces to this OTLP endpoint")

	_ = v.BindPFlag("client.connect_timeout", f.Lookup("connect-timeout"))
	_ = v.BindPFlag("client.reconnect_delay", f.Lookup("reconnect-delay"))
	_ = v.BindPFlag("observability.log_level", f.Lookup("log-level"))
	_ = v.BindPFlag("observability.log_format", f.Lookup("log-format"))
	_ = v.BindPFlag("observability.metrics_addr", f.Lookup("metrics-addr"))
	_ = v.BindPFlag("observability.otlp_endpoint", f.Lookup("otlp-endpoint"))
}

// Load merges defaults, the config file, environment and bound flags into a
// validated Config. A missing config file is only an error when configFile
// names it explicitly.
func Load(v *viper.Viper, configFile string, configPaths ...string) (Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range configPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPaths lists the directories searched for config.yaml.
func DefaultPaths() []string {
	return []string{".", "$HOME/.config/mullvad-rpc", "/etc/mullvad-rpc"}
}
