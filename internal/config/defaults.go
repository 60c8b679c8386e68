// Package config loads the mullvad-rpc client configuration from flags,
// environment and an optional config file.
package config

import "time"

// EnvPrefix prefixes every environment override, e.g. MULLVAD_RPC_CLIENT_CONNECT_TIMEOUT.
const EnvPrefix = "MULLVAD_RPC"

// Defaults contains the default values applied before flags, env and file.
var Defaults = struct {
	ConnectTimeout time.Duration
	ReconnectDelay time.Duration
	WatchTimeout   time.Duration
	LogLevel       string
	LogFormat      string
	OTLPProtocol   string
	ServiceName    string
	ServiceVersion string
}{
	ConnectTimeout: 10 * time.Second,
	ReconnectDelay: 3 * time.Second,
	WatchTimeout:   time.Hour,
	LogLevel:       "warn",
	LogFormat:      "text",
	OTLPProtocol:   "http",
	ServiceName:    "mullvad-rpc",
	ServiceVersion: "dev",
}
