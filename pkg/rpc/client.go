// Package rpc is the client for the Mullvad daemon management interface. A
// Client owns one connection to the local daemon, dispatches typed calls over
// it and manages event subscriptions.
package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/gezibash/mullvad-rpc/internal/observability"
	"github.com/gezibash/mullvad-rpc/pkg/logging"
	"github.com/gezibash/mullvad-rpc/pkg/transport"
)

// Client talks to the daemon over a single Conn.
type Client struct {
	conn    *Conn
	subs    *registry
	logger  *logging.Logger
	metrics *observability.Metrics
}

// NewClient builds a client for endpoint. Use transport.DaemonEndpoint for the
// platform daemon. The client starts disconnected; call Connect.
func NewClient(endpoint transport.Endpoint, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	cfg.dialOpts = append([]grpc.DialOption{
		grpc.WithChainUnaryInterceptor(observability.UnaryClientInterceptor(cfg.metrics)),
		grpc.WithChainStreamInterceptor(observability.StreamClientInterceptor(cfg.metrics)),
	}, cfg.dialOpts...)

	conn, err := newConn(endpoint, cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		conn:    conn,
		subs:    newRegistry(cfg.logger, cfg.metrics, cfg.fault),
		logger:  cfg.logger.WithComponent("client"),
		metrics: cfg.metrics,
	}, nil
}

// Conn returns the underlying connection.
func (c *Client) Conn() *Conn { return c.conn }

// Connect connects to the daemon. See Conn.Connect.
func (c *Client) Connect(ctx context.Context) error { return c.conn.Connect(ctx) }

// Disconnect unsubscribes every open subscription and closes the connection.
func (c *Client) Disconnect() {
	c.subs.unsubscribeAll()
	c.conn.Disconnect()
}

// Reopen makes a disconnected client usable again. See Conn.Reopen.
func (c *Client) Reopen(observer Observer) error { return c.conn.Reopen(observer) }

// IsConnected reports whether calls can be issued.
func (c *Client) IsConnected() bool { return c.conn.IsConnected() }

// State returns the connection state.
func (c *Client) State() State { return c.conn.State() }

// Subscriptions returns the number of open subscriptions.
func (c *Client) Subscriptions() int { return c.subs.len() }
