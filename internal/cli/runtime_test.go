package cli

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/pkg/rpc"
	"github.com/gezibash/mullvad-rpc/pkg/transport"
)

const testTimeout = 5 * time.Second

// startDaemon serves a management service on an in-memory listener that only
// answers GetCurrentVersion.
func startDaemon(t *testing.T) *bufconn.Listener {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	s := pb.NewManagementServiceServer()
	pb.HandleUnary(s, pb.ManagementService_GetCurrentVersion_FullMethodName, func(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
		return wrapperspb.String("2026.3"), nil
	})
	s.Register(gs)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)
	return lis
}

func runtimeOptions(lis *bufconn.Listener) RuntimeOptions {
	endpoint := transport.InMemory("daemon")
	return RuntimeOptions{
		ConfigFile: "",
		Endpoint:   &endpoint,
		ClientOptions: []rpc.Option{
			rpc.WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			})),
		},
	}
}

func newTestRuntime(t *testing.T, v *viper.Viper, opts RuntimeOptions) *Runtime {
	t.Helper()
	rt, err := NewRuntime(context.Background(), v, opts)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close(context.Background()) })
	return rt
}

func TestNewRuntimeAppliesConfig(t *testing.T) {
	v := viper.New()
	v.Set("client.connect_timeout", "2s")
	v.Set("observability.log_level", "debug")

	rt := newTestRuntime(t, v, runtimeOptions(startDaemon(t)))

	if rt.Config.Client.ConnectTimeout != 2*time.Second {
		t.Errorf("connect timeout = %s, want 2s", rt.Config.Client.ConnectTimeout)
	}
	if rt.Config.Client.ReconnectDelay != 3*time.Second {
		t.Errorf("reconnect delay = %s, want default 3s", rt.Config.Client.ReconnectDelay)
	}
	if rt.Config.Observability.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", rt.Config.Observability.LogLevel)
	}
	if rt.Client.Conn().Endpoint().Kind != transport.KindInMemory {
		t.Errorf("endpoint = %s, want in-memory override", rt.Client.Conn().Endpoint())
	}
	if rt.Client.IsConnected() {
		t.Error("client should not connect before Connect")
	}
}

func TestNewRuntimeDefaultEndpoint(t *testing.T) {
	rt := newTestRuntime(t, viper.New(), RuntimeOptions{})

	if got, want := rt.Client.Conn().Endpoint(), transport.DaemonEndpoint(); got != want {
		t.Errorf("endpoint = %s, want %s", got, want)
	}
}

func TestNewRuntimeInvalidConfig(t *testing.T) {
	v := viper.New()
	v.Set("observability.log_format", "xml")

	if _, err := NewRuntime(context.Background(), v, RuntimeOptions{}); err == nil {
		t.Fatal("expected error for invalid log format")
	}
}

func TestNewRuntimeMissingConfigFile(t *testing.T) {
	opts := RuntimeOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}
	if _, err := NewRuntime(context.Background(), viper.New(), opts); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestNewRuntimeConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	if err := os.WriteFile(path, []byte("client:\n  watch_timeout: 30m\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	opts := runtimeOptions(startDaemon(t))
	opts.ConfigFile = path

	rt := newTestRuntime(t, viper.New(), opts)
	if rt.Config.Client.WatchTimeout != 30*time.Minute {
		t.Errorf("watch timeout = %s, want 30m", rt.Config.Client.WatchTimeout)
	}
}

func TestRuntimeConnectAndClose(t *testing.T) {
	rt, err := NewRuntime(context.Background(), viper.New(), runtimeOptions(startDaemon(t)))
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	if err := rt.Connect(ctx); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	version, err := rt.Client.GetCurrentVersion(ctx)
	if err != nil {
		t.Fatalf("GetCurrentVersion: %v", err)
	}
	if version != "2026.3" {
		t.Errorf("version = %q", version)
	}

	if err := rt.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if rt.Client.State() != rpc.StateClosed {
		t.Errorf("state after close = %s, want closed", rt.Client.State())
	}
}

func TestRuntimeConnectFailureNamesEndpoint(t *testing.T) {
	endpoint := transport.InMemory("nowhere")
	rt := newTestRuntime(t, viper.New(), RuntimeOptions{
		Endpoint: &endpoint,
		ClientOptions: []rpc.Option{
			rpc.WithConnectTimeout(50 * time.Millisecond),
			rpc.WithDialOptions(grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
				return nil, errors.New("refused")
			})),
		},
	})

	err := rt.Connect(context.Background())
	if err == nil {
		t.Fatal("expected connect error")
	}
	if got := err.Error(); !strings.Contains(got, "connect to daemon") || !strings.Contains(got, "nowhere") {
		t.Errorf("error = %q", got)
	}
}
