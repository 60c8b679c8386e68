package transport

import (
	"context"
	"fmt"

	rpcerrors "github.com/gezibash/mullvad-rpc/pkg/errors"
)

// SuperuserUID is the uid that must own the daemon socket.
const SuperuserUID = 0

// Verifier checks that the peer behind an endpoint is trusted.
type Verifier interface {
	Verify(ctx context.Context, e Endpoint) error
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(ctx context.Context, e Endpoint) error

// Verify calls f.
func (f VerifierFunc) Verify(ctx context.Context, e Endpoint) error { return f(ctx, e) }

// StatFunc returns the owning uid of a filesystem path.
type StatFunc func(path string) (uint32, error)

// PipeOwnerFunc reports whether a named pipe is owned by an administrator.
// The returned string describes the owner for error messages.
type PipeOwnerFunc func(path string) (trusted bool, owner string, err error)

// OwnershipVerifier rejects sockets not owned by root and pipes not owned by an
// administrator account.
type OwnershipVerifier struct {
	statOwner StatFunc
	pipeOwner PipeOwnerFunc
}

// VerifierOption configures an OwnershipVerifier.
type VerifierOption func(*OwnershipVerifier)

// WithStatFunc overrides how socket ownership is read.
func WithStatFunc(fn StatFunc) VerifierOption {
	return func(v *OwnershipVerifier) { v.statOwner = fn }
}

// WithPipeOwnerFunc overrides how pipe ownership is read.
func WithPipeOwnerFunc(fn PipeOwnerFunc) VerifierOption {
	return func(v *OwnershipVerifier) { v.pipeOwner = fn }
}

// NewOwnershipVerifier returns a verifier backed by the platform ownership checks.
func NewOwnershipVerifier(opts ...VerifierOption) *OwnershipVerifier {
	v := &OwnershipVerifier{
		statOwner: statOwner,
		pipeOwner: pipeOwner,
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Verify returns an error wrapping ErrUntrustedEndpoint unless e is owned by a
// privileged principal. In-memory endpoints always pass.
func (v *OwnershipVerifier) Verify(ctx context.Context, e Endpoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch e.Kind {
	case KindInMemory:
		return nil
	case KindUnixSocket:
		uid, err := v.statOwner(e.Path)
		if err != nil {
			return fmt.Errorf("%w: stat %s: %w", rpcerrors.ErrUntrustedEndpoint, e.Path, err)
		}
		if uid != SuperuserUID {
			return fmt.Errorf("%w: %s is owned by uid %d", rpcerrors.ErrUntrustedEndpoint, e.Path, uid)
		}
		return nil
	case KindNamedPipe:
		trusted, owner, err := v.pipeOwner(e.Path)
		if err != nil {
			return fmt.Errorf("%w: query owner of %s: %w", rpcerrors.ErrUntrustedEndpoint, e.Path, err)
		}
		if !trusted {
			return fmt.Errorf("%w: %s is owned by %s", rpcerrors.ErrUntrustedEndpoint, e.Path, owner)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown endpoint kind %d", rpcerrors.ErrUntrustedEndpoint, e.Kind)
	}
}

// NoVerification accepts every endpoint.
var NoVerification Verifier = VerifierFunc(func(context.Context, Endpoint) error { return nil })
