package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/gezibash/mullvad-rpc/internal/config"
	"github.com/gezibash/mullvad-rpc/internal/observability"
	"github.com/gezibash/mullvad-rpc/pkg/logging"
	"github.com/gezibash/mullvad-rpc/pkg/rpc"
	"github.com/gezibash/mullvad-rpc/pkg/transport"
)

// Runtime holds what one command invocation needs: the merged config, the
// observability stack and a daemon client.
type Runtime struct {
	Config config.Config
	Obs    *observability.Observability
	Client *rpc.Client
	Logger *logging.Logger
}

// RuntimeOptions configures NewRuntime.
type RuntimeOptions struct {
	// ConfigFile is an explicit config file. Empty searches the default paths.
	ConfigFile string
	// LogWriter receives log output. Commands print results to stdout, so
	// logs default to stderr.
	LogWriter io.Writer
	// Endpoint overrides the platform daemon endpoint.
	Endpoint *transport.Endpoint
	// ClientOptions are appended after the options derived from config.
	ClientOptions []rpc.Option
}

// NewRuntime loads config from v, starts logging, tracing and the optional
// metrics server, and builds a disconnected daemon client.
func NewRuntime(ctx context.Context, v *viper.Viper, opts RuntimeOptions) (*Runtime, error) {
	cfg, err := config.Load(v, opts.ConfigFile, config.DefaultPaths()...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	w := opts.LogWriter
	if w == nil {
		w = io.Discard
	}
	obs, err := observability.New(ctx, observability.ObsConfig{
		LogLevel:       cfg.Observability.LogLevel,
		LogFormat:      cfg.Observability.LogFormat,
		OTLPEndpoint:   cfg.Observability.OTLPEndpoint,
		OTLPProtocol:   cfg.Observability.OTLPProtocol,
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
	}, w)
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}
	obs.ServeMetrics(cfg.Observability.MetricsAddr)

	logger := logging.New(obs.Logger)
	endpoint := transport.DaemonEndpoint()
	if opts.Endpoint != nil {
		endpoint = *opts.Endpoint
	}

	clientOpts := append([]rpc.Option{
		rpc.WithConnectTimeout(cfg.Client.ConnectTimeout),
		rpc.WithReconnectDelay(cfg.Client.ReconnectDelay),
		rpc.WithWatchTimeout(cfg.Client.WatchTimeout),
		rpc.WithLogger(logger),
		rpc.WithMetrics(obs.Metrics),
	}, opts.ClientOptions...)

	client, err := rpc.NewClient(endpoint, clientOpts...)
	if err != nil {
		_ = obs.Close(ctx)
		return nil, fmt.Errorf("create client: %w", err)
	}
	obs.Shutdown.Register("daemon-client", func(context.Context) error {
		client.Disconnect()
		return nil
	})

	return &Runtime{Config: cfg, Obs: obs, Client: client, Logger: logger.WithComponent("cli")}, nil
}

// Connect connects the client, bounded by the configured connect timeout.
func (r *Runtime) Connect(ctx context.Context) error {
	if err := r.Client.Connect(ctx); err != nil {
		return fmt.Errorf("connect to daemon at %s: %w", r.Client.Conn().Endpoint(), err)
	}
	return nil
}

// Close disconnects the client and flushes telemetry.
func (r *Runtime) Close(ctx context.Context) error {
	return r.Obs.Close(ctx)
}
