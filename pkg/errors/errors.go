// Package errors provides the sentinel errors shared by the daemon client packages.
package errors

import stderrors "errors"

var (
	// ErrNoConnection is returned synchronously by calls and subscriptions issued
	// while the daemon connection is down.
	ErrNoConnection = stderrors.New("no connection established to daemon")

	// ErrClosed indicates the connection was explicitly closed.
	ErrClosed = stderrors.New("connection closed")

	// ErrStaleAttempt is returned by a connect attempt whose channel was replaced
	// while it was in flight.
	ErrStaleAttempt = stderrors.New("stale connection attempt")

	// ErrConnectTimeout indicates the channel did not become ready in time.
	ErrConnectTimeout = stderrors.New("timed out waiting for daemon")

	// ErrUntrustedEndpoint indicates the daemon endpoint is not owned by a
	// privileged principal.
	ErrUntrustedEndpoint = stderrors.New("daemon endpoint is not owned by a trusted principal")

	// ErrInvalidResponse indicates a daemon message could not be decoded.
	ErrInvalidResponse = stderrors.New("invalid response")

	// ErrStreamEnded indicates the daemon ended an event stream.
	ErrStreamEnded = stderrors.New("event stream ended")

	// ErrCustomListExists indicates a custom list with the same name exists.
	ErrCustomListExists = stderrors.New("custom list name already exists")

	// ErrInvalidInput indicates the input is invalid.
	ErrInvalidInput = stderrors.New("invalid input")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }
