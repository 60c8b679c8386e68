package rpc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc/connectivity"

	rpcerrors "github.com/gezibash/mullvad-rpc/pkg/errors"
	"github.com/gezibash/mullvad-rpc/pkg/logging"
	"github.com/gezibash/mullvad-rpc/pkg/transport"
)

// State is the externally visible state of a Conn.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Observer is notified of connection transitions. Callbacks run on the
// goroutine that caused the transition, after the connect attempt has
// finished, so they may call Connect. They must not block.
type Observer interface {
	OnOpen()
	OnClose(wasConnected bool, err error)
}

// ObserverFuncs adapts a pair of functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Open  func()
	Close func(wasConnected bool, err error)
}

func (o ObserverFuncs) OnOpen() {
	if o.Open != nil {
		o.Open()
	}
}

func (o ObserverFuncs) OnClose(wasConnected bool, err error) {
	if o.Close != nil {
		o.Close(wasConnected, err)
	}
}

// Conn drives a Channel through disconnected, connecting, connected and closed,
// verifying endpoint ownership before the channel is used and reconnecting
// after failures.
type Conn struct {
	endpoint transport.Endpoint
	cfg      config
	logger   *logging.Logger

	// connectMu serializes connect attempts.
	connectMu sync.Mutex

	mu       sync.Mutex
	state    State
	channel  Channel
	observer Observer
	ensure   *time.Timer

	// watched is the channel the running connectivity watch observes.
	watched   Channel
	stopWatch context.CancelFunc
}

// NewConn builds a Conn for endpoint with a fresh channel. It does not connect.
func NewConn(endpoint transport.Endpoint, opts ...Option) (*Conn, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return newConn(endpoint, cfg)
}

func newConn(endpoint transport.Endpoint, cfg config) (*Conn, error) {
	ch, err := cfg.factory(endpoint, cfg.dialOpts...)
	if err != nil {
		return nil, err
	}
	c := &Conn{
		endpoint: endpoint,
		cfg:      cfg,
		logger:   cfg.logger.WithComponent("conn").WithEndpoint(endpoint.Path),
		channel:  ch,
		observer: cfg.observer,
	}
	c.cfg.metrics.SetConnectionState(StateDisconnected.String())
	return c, nil
}

// Endpoint returns the endpoint the connection is bound to.
func (c *Conn) Endpoint() transport.Endpoint { return c.endpoint }

// State returns the current state.
func (c *Conn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsConnected reports whether the connection is usable for calls.
func (c *Conn) IsConnected() bool {
	return c.State() == StateConnected
}

// Channel returns the installed channel, or nil once the connection is closed.
func (c *Conn) Channel() Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.channel
}

// ready returns the channel if the connection is connected.
func (c *Conn) ready() (Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConnected || c.channel == nil {
		return nil, rpcerrors.ErrNoConnection
	}
	return c.channel, nil
}

// Connect waits for the channel to become ready, verifies the endpoint and
// marks the connection connected. On failure the observer is told and a retry
// is scheduled after the reconnect delay. Observer callbacks run after the
// attempt has released its lock, so they may call Connect again.
func (c *Conn) Connect(ctx context.Context) error {
	notify, err := c.connect(ctx)
	if notify != nil {
		notify()
	}
	return err
}

// connect runs one serialized attempt and returns the observer notification
// for the outcome, if any.
func (c *Conn) connect(ctx context.Context) (func(), error) {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	c.mu.Lock()
	switch c.state {
	case StateClosed:
		c.mu.Unlock()
		return nil, rpcerrors.ErrClosed
	case StateConnected:
		c.mu.Unlock()
		return nil, nil
	}
	if c.channel == nil || c.channel.GetState() == connectivity.Shutdown {
		if err := c.replaceChannelLocked(); err != nil {
			c.mu.Unlock()
			return nil, err
		}
	}
	ch := c.channel
	c.stopEnsureLocked()
	c.setStateLocked(StateConnecting)
	c.mu.Unlock()

	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.connectTimeout)
	err := waitReady(attemptCtx, ch)
	untrusted := false
	if err == nil && c.endpoint.RequiresVerification() {
		if err = c.cfg.verifier.Verify(attemptCtx, c.endpoint); err != nil {
			untrusted = true
		}
	}
	cancel()

	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		c.logger.Debug("connection closed during connect attempt")
		return nil, rpcerrors.ErrClosed
	}
	if c.channel != ch {
		c.mu.Unlock()
		c.logger.Debug("discarding connect attempt on replaced channel")
		return nil, rpcerrors.ErrStaleAttempt
	}

	if err == nil {
		c.setStateLocked(StateConnected)
		c.startWatchLocked(ch)
		obs := c.observer
		c.mu.Unlock()
		c.logger.Info("connected to daemon")
		if obs == nil {
			return nil, nil
		}
		return obs.OnOpen, nil
	}

	if untrusted {
		// An unverified transport never carries calls.
		c.stopWatchLocked()
		if cerr := ch.Close(); cerr != nil {
			c.logger.WithError(cerr).Debug("close untrusted channel")
		}
		if rerr := c.replaceChannelLocked(); rerr != nil {
			c.logger.WithError(rerr).Error("replace untrusted channel")
		}
	}
	c.setStateLocked(StateDisconnected)
	c.armEnsureLocked()
	obs := c.observer
	c.mu.Unlock()

	c.logger.WithError(err).Warn("connect to daemon failed")
	if obs == nil {
		return nil, err
	}
	return func() { obs.OnClose(false, err) }, err
}

// Disconnect closes the connection. It stops timers and the connectivity
// watch, closes the channel and drops the observer. Calling it again is a no-op.
func (c *Conn) Disconnect() {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return
	}
	c.setStateLocked(StateClosed)
	c.stopEnsureLocked()
	c.stopWatchLocked()
	ch := c.channel
	c.channel = nil
	c.observer = nil
	c.mu.Unlock()

	if ch != nil {
		if err := ch.Close(); err != nil {
			c.logger.WithError(err).Debug("close channel")
		}
	}
	c.logger.Info("disconnected from daemon")
}

// Reopen installs a fresh channel on the same endpoint and returns a closed
// connection to disconnected. It does nothing unless the connection is closed.
func (c *Conn) Reopen(observer Observer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateClosed {
		return nil
	}
	if err := c.replaceChannelLocked(); err != nil {
		return err
	}
	c.observer = observer
	c.setStateLocked(StateDisconnected)
	return nil
}

func (c *Conn) replaceChannelLocked() error {
	ch, err := c.cfg.factory(c.endpoint, c.cfg.dialOpts...)
	if err != nil {
		c.channel = nil
		return err
	}
	c.channel = ch
	return nil
}

func (c *Conn) setStateLocked(s State) {
	if c.state == s {
		return
	}
	c.logger.WithState(s.String()).Debug("connection state changed", "from", c.state.String())
	c.state = s
	c.cfg.metrics.SetConnectionState(s.String())
}

func waitReady(ctx context.Context, ch Channel) error {
	for {
		s := ch.GetState()
		switch s {
		case connectivity.Ready:
			return nil
		case connectivity.Shutdown:
			return rpcerrors.ErrClosed
		case connectivity.Idle:
			ch.Connect()
		}
		if !ch.WaitForStateChange(ctx, s) {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: channel %s", rpcerrors.ErrConnectTimeout, s)
			}
			return ctx.Err()
		}
	}
}

// Reconnection ensurance. Connectivity watches can miss transitions, so a
// failed connect always arms a one-shot retry.

func (c *Conn) armEnsureLocked() {
	c.stopEnsureLocked()
	c.ensure = time.AfterFunc(c.cfg.reconnectDelay, c.ensureConnected)
}

func (c *Conn) stopEnsureLocked() {
	if c.ensure != nil {
		c.ensure.Stop()
		c.ensure = nil
	}
}

func (c *Conn) ensureConnected() {
	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return
	}
	ch := c.channel
	c.mu.Unlock()

	if ch != nil {
		ch.Connect()
	}
	c.reconnect()
}

func (c *Conn) reconnect() {
	if c.cfg.metrics != nil {
		c.cfg.metrics.ReconnectAttempts.Inc()
	}
	err := c.Connect(context.Background())
	if err != nil && !errors.Is(err, rpcerrors.ErrClosed) {
		c.logger.WithError(err).Debug("reconnect attempt failed")
	}
}

// Connectivity watch.

func (c *Conn) startWatchLocked(ch Channel) {
	if c.watched == ch {
		return
	}
	c.stopWatchLocked()
	ctx, cancel := context.WithCancel(context.Background())
	c.watched = ch
	c.stopWatch = cancel
	go c.watch(ctx, ch, connectivity.Ready)
}

func (c *Conn) stopWatchLocked() {
	if c.stopWatch != nil {
		c.stopWatch()
		c.stopWatch = nil
	}
	c.watched = nil
}

func (c *Conn) watch(ctx context.Context, ch Channel, last connectivity.State) {
	for {
		waitCtx, cancel := context.WithTimeout(ctx, c.cfg.watchTimeout)
		ch.WaitForStateChange(waitCtx, last)
		cancel()
		if ctx.Err() != nil {
			return
		}

		s := ch.GetState()
		last = s

		c.mu.Lock()
		if c.channel != ch || c.state == StateClosed {
			c.mu.Unlock()
			return
		}
		switch {
		case c.state == StateConnected && lost(s):
			c.setStateLocked(StateDisconnected)
			obs := c.observer
			c.mu.Unlock()
			c.logger.WithState(s.String()).Warn("lost connection to daemon")
			if obs != nil {
				obs.OnClose(true, nil)
			}
			go c.reconnect()
		case c.state == StateDisconnected && s == connectivity.Ready:
			// Restored channels are verified again through Connect.
			c.stopEnsureLocked()
			c.mu.Unlock()
			c.logger.Info("daemon channel ready again")
			go c.reconnect()
		default:
			c.mu.Unlock()
		}
	}
}

func lost(s connectivity.State) bool {
	return s == connectivity.Shutdown || s == connectivity.TransientFailure || s == connectivity.Idle
}
