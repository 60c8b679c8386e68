// Package transport resolves the local endpoint of the daemon control channel and
// verifies that the endpoint is owned by a privileged principal before it is trusted.
package transport

import (
	"fmt"

	"google.golang.org/grpc"
)

// ProductName names the daemon in platform endpoint paths.
const ProductName = "Mullvad VPN"

// UnixScheme prefixes Unix domain socket targets.
const UnixScheme = "unix://"

// Kind identifies the transport behind an Endpoint.
type Kind int

const (
	KindUnixSocket Kind = iota + 1
	KindNamedPipe
	// KindInMemory endpoints are in-process and never verified.
	KindInMemory
)

func (k Kind) String() string {
	switch k {
	case KindUnixSocket:
		return "unix"
	case KindNamedPipe:
		return "pipe"
	case KindInMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Endpoint is a resolved daemon address.
type Endpoint struct {
	Kind Kind
	// Path is the filesystem or pipe path that ownership is checked against.
	Path string
	// Target is the gRPC dial target.
	Target string
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s:%s", e.Kind, e.Path)
}

// RequiresVerification reports whether the peer behind the endpoint must pass
// ownership verification before the connection is usable.
func (e Endpoint) RequiresVerification() bool {
	return e.Kind == KindUnixSocket || e.Kind == KindNamedPipe
}

// UnixSocket returns an endpoint for a Unix domain socket at path.
func UnixSocket(path string) Endpoint {
	return Endpoint{Kind: KindUnixSocket, Path: path, Target: UnixScheme + path}
}

// NamedPipe returns an endpoint for a Windows named pipe at path.
func NamedPipe(path string) Endpoint {
	return Endpoint{Kind: KindNamedPipe, Path: path, Target: "passthrough:///" + path}
}

// InMemory returns an endpoint for an in-process listener such as bufconn.
func InMemory(name string) Endpoint {
	return Endpoint{Kind: KindInMemory, Path: name, Target: "passthrough:///" + name}
}

// DialOptions returns the dial options needed to reach e.
func DialOptions(e Endpoint) []grpc.DialOption {
	if e.Kind == KindNamedPipe {
		return []grpc.DialOption{grpc.WithContextDialer(pipeDialer(e.Path))}
	}
	return nil
}
