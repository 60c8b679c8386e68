package rpc

import (
	"context"

	"google.golang.org/grpc"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/internal/convert"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

var daemonEvents = feed[pb.DaemonEvent, vpn.DaemonEvent]{
	name: "daemon",
	open: func(ctx context.Context, cc grpc.ClientConnInterface) (grpc.ServerStreamingClient[pb.DaemonEvent], error) {
		return pb.EventsListen(ctx, cc)
	},
	decode: convert.DaemonEventFromWire,
	kind:   vpn.DaemonEvent.Kind,
}

var appUpgradeEvents = feed[pb.AppUpgradeEvent, vpn.AppUpgradeEvent]{
	name: "app_upgrade",
	open: func(ctx context.Context, cc grpc.ClientConnInterface) (grpc.ServerStreamingClient[pb.AppUpgradeEvent], error) {
		return pb.AppUpgradeEventsListen(ctx, cc)
	},
	decode: convert.AppUpgradeEventFromWire,
	kind:   vpn.AppUpgradeEvent.Kind,
}

// SubscribeDaemonEvents opens the daemon event feed and delivers it to l in
// order. It returns the subscription handle.
func (c *Client) SubscribeDaemonEvents(ctx context.Context, l *Listener[vpn.DaemonEvent]) (uint64, error) {
	return subscribe(ctx, c.conn, c.subs, daemonEvents, l)
}

// UnsubscribeDaemonEvents stops delivery to l and cancels its stream. It
// reports whether l was subscribed.
func (c *Client) UnsubscribeDaemonEvents(l *Listener[vpn.DaemonEvent]) bool {
	if l == nil {
		return false
	}
	return c.subs.unsubscribe(l.Handle())
}

// SubscribeAppUpgradeEvents opens the app upgrade feed and delivers it to l.
func (c *Client) SubscribeAppUpgradeEvents(ctx context.Context, l *Listener[vpn.AppUpgradeEvent]) (uint64, error) {
	return subscribe(ctx, c.conn, c.subs, appUpgradeEvents, l)
}

// UnsubscribeAppUpgradeEvents stops delivery to l and cancels its stream.
func (c *Client) UnsubscribeAppUpgradeEvents(l *Listener[vpn.AppUpgradeEvent]) bool {
	if l == nil {
		return false
	}
	return c.subs.unsubscribe(l.Handle())
}
