package rpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/internal/observability"
	"github.com/gezibash/mullvad-rpc/pkg/logging"
	"github.com/gezibash/mullvad-rpc/pkg/rpc"
	"github.com/gezibash/mullvad-rpc/pkg/transport"
)

const testTimeout = 5 * time.Second

// fakeDaemon serves the management service over an in-memory listener.
type fakeDaemon struct {
	lis     *bufconn.Listener
	metrics *observability.Metrics
}

func startDaemon(t *testing.T, setup func(s *pb.ManagementServiceServer)) *fakeDaemon {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	s := pb.NewManagementServiceServer()
	if setup != nil {
		setup(s)
	}
	s.Register(gs)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)
	return &fakeDaemon{lis: lis, metrics: observability.NewMetrics()}
}

func (d *fakeDaemon) client(t *testing.T, opts ...rpc.Option) *rpc.Client {
	t.Helper()
	base := []rpc.Option{
		rpc.WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return d.lis.DialContext(ctx)
		})),
		rpc.WithLogger(logging.Discard()),
		rpc.WithMetrics(d.metrics),
		rpc.WithConnectTimeout(testTimeout),
		rpc.WithReconnectDelay(time.Hour),
	}
	c, err := rpc.NewClient(transport.InMemory("daemon"), append(base, opts...)...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(c.Disconnect)
	return c
}

// connected returns a client that has completed Connect.
func (d *fakeDaemon) connected(t *testing.T, opts ...rpc.Option) *rpc.Client {
	t.Helper()
	c := d.client(t, opts...)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	if err := c.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return c
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)
	return ctx
}

func ptr[T any](v T) *T { return &v }
