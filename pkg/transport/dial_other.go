//go:build !windows

package transport

import (
	"context"
	"errors"
	"net"
)

var errPipeUnsupported = errors.New("named pipes are only available on windows")

func pipeDialer(string) func(context.Context, string) (net.Conn, error) {
	return func(context.Context, string) (net.Conn, error) {
		return nil, errPipeUnsupported
	}
}
