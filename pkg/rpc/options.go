package rpc

import (
	"time"

	"google.golang.org/grpc"

	"github.com/gezibash/mullvad-rpc/internal/observability"
	"github.com/gezibash/mullvad-rpc/pkg/logging"
	"github.com/gezibash/mullvad-rpc/pkg/transport"
)

// Defaults for the connection timers.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultReconnectDelay = 3 * time.Second
	DefaultWatchTimeout   = time.Hour
)

type config struct {
	connectTimeout time.Duration
	reconnectDelay time.Duration
	watchTimeout   time.Duration
	verifier       transport.Verifier
	factory        ChannelFactory
	dialOpts       []grpc.DialOption
	observer       Observer
	logger         *logging.Logger
	metrics        *observability.Metrics
	fault          func(error)
}

func defaultConfig() config {
	return config{
		connectTimeout: DefaultConnectTimeout,
		reconnectDelay: DefaultReconnectDelay,
		watchTimeout:   DefaultWatchTimeout,
		verifier:       transport.NewOwnershipVerifier(),
		factory:        DialChannel,
		logger:         logging.New(nil),
	}
}

// Option configures a Conn or Client.
type Option func(*config)

// WithConnectTimeout bounds how long Connect waits for the channel to become ready.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *config) { c.connectTimeout = d }
}

// WithReconnectDelay sets the delay before a failed Connect is retried.
func WithReconnectDelay(d time.Duration) Option {
	return func(c *config) { c.reconnectDelay = d }
}

// WithWatchTimeout sets how long a single connectivity watch waits before it
// re-samples the channel state.
func WithWatchTimeout(d time.Duration) Option {
	return func(c *config) { c.watchTimeout = d }
}

// WithVerifier replaces the endpoint ownership verifier.
func WithVerifier(v transport.Verifier) Option {
	return func(c *config) { c.verifier = v }
}

// WithChannelFactory replaces how channels are built.
func WithChannelFactory(f ChannelFactory) Option {
	return func(c *config) { c.factory = f }
}

// WithDialOptions appends gRPC dial options passed to the channel factory.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *config) { c.dialOpts = append(c.dialOpts, opts...) }
}

// WithObserver sets the observer notified of connection transitions.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics records connection, call and subscription metrics into m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithFaultHandler sets the handler for stream errors that arrive after a
// subscription was torn down and are not cancellations. The default logs the
// error and panics.
func WithFaultHandler(fn func(error)) Option {
	return func(c *config) { c.fault = fn }
}
