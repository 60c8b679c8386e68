package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/gezibash/mullvad-rpc/internal/cli"
	"github.com/gezibash/mullvad-rpc/internal/filter"
	rpcerrors "github.com/gezibash/mullvad-rpc/pkg/errors"
	"github.com/gezibash/mullvad-rpc/pkg/rpc"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

func newEventsCmd(a *app) *cobra.Command {
	var (
		upgrades bool
		expr     string
	)
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Stream daemon events until interrupted",
		Long: "Stream daemon events until interrupted.\n\n" +
			"--filter takes a CEL expression over kind and event, e.g.\n" +
			`  kind == "tunnel_state" && event.state == "connected"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f *filter.Filter
			if expr != "" {
				var err error
				if f, err = filter.Compile(expr); err != nil {
					return a.fail(cmd, err)
				}
			}
			return a.run(cmd, "events", func(ctx context.Context) error {
				if upgrades {
					return a.streamUpgrades(ctx, f)
				}
				return a.streamEvents(ctx, f)
			})
		},
	}
	cmd.Flags().BoolVar(&upgrades, "upgrades", false, "stream app upgrade progress instead")
	cmd.Flags().StringVar(&expr, "filter", "", "only print events matching this CEL expression")
	return cmd
}

// eventSink runs listener output on the command goroutine, in arrival order.
type eventSink struct {
	items chan func() error
	stop  chan struct{}
}

func newEventSink() *eventSink {
	return &eventSink{
		items: make(chan func() error, 64),
		stop:  make(chan struct{}),
	}
}

// emit queues one event for output unless f rejects it.
func (s *eventSink) emit(out *cli.Output, f *filter.Filter, kind string, data any, text string) {
	if f != nil && !f.Match(kind, data) {
		return
	}
	s.push(func() error { return out.Event(kind, data, text) })
}

func (s *eventSink) push(fn func() error) {
	select {
	case s.items <- fn:
	case <-s.stop:
	}
}

// fail ends drain with err once earlier items are written.
func (s *eventSink) fail(err error) {
	s.push(func() error { return err })
}

func (s *eventSink) drain(ctx context.Context) error {
	defer close(s.stop)
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-s.items:
			if err := fn(); err != nil {
				return err
			}
		}
	}
}

// streamEvents prints daemon events. Malformed messages are reported and
// skipped; any other stream error ends the command.
func (a *app) streamEvents(ctx context.Context, f *filter.Filter) error {
	out := a.output()
	sink := newEventSink()
	l := rpc.NewListener(func(ev vpn.DaemonEvent) {
		v := viewEvent(ev)
		sink.emit(out, f, ev.Kind(), v.data, v.text)
	}, func(err error) {
		if errors.Is(err, rpcerrors.ErrInvalidResponse) {
			sink.emit(out, f, "malformed", map[string]any{"error": err.Error()}, err.Error())
			return
		}
		sink.fail(err)
	})
	if _, err := a.daemon.SubscribeDaemonEvents(ctx, l); err != nil {
		return err
	}
	defer a.daemon.UnsubscribeDaemonEvents(l)
	return sink.drain(ctx)
}

func (a *app) streamUpgrades(ctx context.Context, f *filter.Filter) error {
	out := a.output()
	sink := newEventSink()
	l := rpc.NewListener(func(ev vpn.AppUpgradeEvent) {
		v := viewUpgrade(ev)
		sink.emit(out, f, ev.Kind(), v.data, v.text)
	}, func(err error) {
		if errors.Is(err, rpcerrors.ErrInvalidResponse) {
			return
		}
		sink.fail(err)
	})
	if _, err := a.daemon.SubscribeAppUpgradeEvents(ctx, l); err != nil {
		return err
	}
	defer a.daemon.UnsubscribeAppUpgradeEvents(l)
	return sink.drain(ctx)
}
