package rpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gezibash/mullvad-rpc/internal/observability"
	rpcerrors "github.com/gezibash/mullvad-rpc/pkg/errors"
	"github.com/gezibash/mullvad-rpc/pkg/logging"
)

// Listener receives the events of one subscription. OnError is called for
// messages that fail to decode, which leave the stream open, and once more
// when the stream fails, after which the subscription is gone.
//
// Callbacks run one at a time on the subscription's goroutine. Unsubscribing
// waits for a running callback to return, so a callback must not unsubscribe
// its own listener or disconnect the client synchronously.
type Listener[T any] struct {
	OnEvent func(T)
	OnError func(error)

	handle atomic.Uint64
}

// NewListener returns a listener. Either callback may be nil.
func NewListener[T any](onEvent func(T), onError func(error)) *Listener[T] {
	return &Listener[T]{OnEvent: onEvent, OnError: onError}
}

// Handle returns the registry handle of the active subscription, or 0.
func (l *Listener[T]) Handle() uint64 { return l.handle.Load() }

// subscription is the registry record of one open stream.
type subscription struct {
	id     uint64
	feed   string
	cancel context.CancelFunc
	// strip detaches the listener and waits out a callback in progress.
	strip func()
	// deliver is held while a listener callback runs.
	deliver sync.Mutex
}

// registry tracks open streams by handle. Handles start at 1 and are never reused.
type registry struct {
	logger  *logging.Logger
	metrics *observability.Metrics
	fault   func(error)

	next atomic.Uint64

	mu   sync.Mutex
	subs map[uint64]*subscription
}

func newRegistry(logger *logging.Logger, metrics *observability.Metrics, fault func(error)) *registry {
	r := &registry{
		logger:  logger.WithComponent("subscriptions"),
		metrics: metrics,
		subs:    make(map[uint64]*subscription),
	}
	r.fault = fault
	if r.fault == nil {
		r.fault = r.panicFault
	}
	return r
}

func (r *registry) panicFault(err error) {
	r.logger.WithError(err).Error("unexpected stream error after unsubscribe")
	panic(err)
}

func (r *registry) add(s *subscription) {
	r.mu.Lock()
	r.subs[s.id] = s
	r.mu.Unlock()
	if r.metrics != nil {
		r.metrics.ActiveSubscriptions.WithLabelValues(s.feed).Inc()
	}
}

// remove deletes the record for id and reports whether it was present. Exactly
// one of the pump and unsubscribe wins the removal.
func (r *registry) remove(id uint64) (*subscription, bool) {
	r.mu.Lock()
	s, ok := r.subs[id]
	if ok {
		delete(r.subs, id)
	}
	r.mu.Unlock()
	if ok && r.metrics != nil {
		r.metrics.ActiveSubscriptions.WithLabelValues(s.feed).Dec()
	}
	return s, ok
}

// handles returns a snapshot of the open handles.
func (r *registry) handles() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, 0, len(r.subs))
	for id := range r.subs {
		out = append(out, id)
	}
	return out
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// unsubscribe detaches the listener and cancels the stream off the caller's
// goroutine.
func (r *registry) unsubscribe(id uint64) bool {
	s, ok := r.remove(id)
	if !ok {
		return false
	}
	s.strip()
	go s.cancel()
	r.logger.WithSubscription(id).Debug("unsubscribed", "feed", s.feed)
	return true
}

func (r *registry) unsubscribeAll() {
	for _, id := range r.handles() {
		r.unsubscribe(id)
	}
}

// tornDown handles an error from a stream whose listener was already
// detached. Cancellation and a clean end are expected; anything else is a fault.
func (r *registry) tornDown(s *subscription, err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled {
		return
	}
	r.fault(fmt.Errorf("subscription %d (%s): %w", s.id, s.feed, err))
}

// feed describes one server-streamed event feed.
type feed[W, T any] struct {
	name   string
	open   func(ctx context.Context, cc grpc.ClientConnInterface) (grpc.ServerStreamingClient[W], error)
	decode func(*W) (T, error)
	kind   func(T) string
}

// subscribe opens f on the connection and pumps it into l. The stream outlives
// ctx; it ends on unsubscribe, disconnect or a stream error.
func subscribe[W, T any](ctx context.Context, c *Conn, r *registry, f feed[W, T], l *Listener[T]) (uint64, error) {
	if l == nil {
		return 0, fmt.Errorf("subscribe %s: nil listener", f.name)
	}
	if h := l.Handle(); h != 0 {
		return 0, fmt.Errorf("subscribe %s: listener already subscribed as %d", f.name, h)
	}
	ch, err := c.ready()
	if err != nil {
		return 0, err
	}

	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stream, err := f.open(streamCtx, ch)
	if err != nil {
		cancel()
		return 0, fmt.Errorf("subscribe %s: %w", f.name, err)
	}

	id := r.next.Add(1)
	var target atomic.Pointer[Listener[T]]
	target.Store(l)
	l.handle.Store(id)

	s := &subscription{id: id, feed: f.name, cancel: cancel}
	s.strip = func() {
		target.Store(nil)
		l.handle.CompareAndSwap(id, 0)
		s.deliver.Lock()
		s.deliver.Unlock()
	}
	r.add(s)
	r.logger.WithSubscription(id).Debug("subscribed", "feed", f.name)

	go pump(r, s, f, stream, &target)
	return id, nil
}

// pump delivers messages in the order received until the stream ends.
func pump[W, T any](r *registry, s *subscription, f feed[W, T], stream grpc.ServerStreamingClient[W], target *atomic.Pointer[Listener[T]]) {
	logger := r.logger.WithSubscription(s.id)
	for {
		msg, err := stream.Recv()
		if err != nil {
			if _, active := r.remove(s.id); !active {
				r.tornDown(s, err)
				return
			}
			s.cancel()
			if errors.Is(err, io.EOF) {
				err = rpcerrors.ErrStreamEnded
			}
			s.deliver.Lock()
			if l := target.Swap(nil); l != nil {
				l.handle.CompareAndSwap(s.id, 0)
				logger.WithError(err).Warn("event stream failed", "feed", f.name)
				if l.OnError != nil {
					l.OnError(err)
				}
			}
			s.deliver.Unlock()
			return
		}

		if target.Load() == nil {
			continue
		}
		ev, err := f.decode(msg)
		if err != nil {
			logger.WithError(err).Warn("dropping malformed event", "feed", f.name)
			if r.metrics != nil {
				r.metrics.DecodeErrors.WithLabelValues(f.name).Inc()
			}
			deliver(s, target, func(l *Listener[T]) {
				if l.OnError != nil {
					l.OnError(err)
				}
			})
			continue
		}
		if r.metrics != nil {
			r.metrics.EventsTotal.WithLabelValues(f.name, f.kind(ev)).Inc()
		}
		deliver(s, target, func(l *Listener[T]) {
			if l.OnEvent != nil {
				l.OnEvent(ev)
			}
		})
	}
}

// deliver runs fn with the listener if it is still attached. strip waits for
// a running delivery, so nothing is delivered once it has returned.
func deliver[T any](s *subscription, target *atomic.Pointer[Listener[T]], fn func(*Listener[T])) {
	s.deliver.Lock()
	defer s.deliver.Unlock()
	if l := target.Load(); l != nil {
		fn(l)
	}
}
