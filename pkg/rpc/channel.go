package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/gezibash/mullvad-rpc/pkg/transport"
)

// Channel is the underlying connection to the daemon. *grpc.ClientConn
// satisfies it.
type Channel interface {
	grpc.ClientConnInterface
	GetState() connectivity.State
	WaitForStateChange(ctx context.Context, source connectivity.State) bool
	Connect()
	Close() error
}

// ChannelFactory builds a fresh channel bound to an endpoint.
type ChannelFactory func(e transport.Endpoint, opts ...grpc.DialOption) (Channel, error)

// DialChannel is the default ChannelFactory. The channel retries with a fixed
// delay and never goes idle on its own.
func DialChannel(e transport.Endpoint, opts ...grpc.DialOption) (Channel, error) {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  DefaultReconnectDelay,
				Multiplier: 1,
				MaxDelay:   DefaultReconnectDelay,
			},
			MinConnectTimeout: DefaultReconnectDelay,
		}),
		grpc.WithIdleTimeout(0),
	}
	base = append(base, transport.DialOptions(e)...)
	base = append(base, opts...)

	cc, err := grpc.NewClient(e.Target, base...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", e, err)
	}
	return cc, nil
}
