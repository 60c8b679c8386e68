//go:build !windows

package transport

// DaemonSocketPath is the Unix domain socket the daemon listens on.
const DaemonSocketPath = "/var/run/mullvad-vpn"

// DaemonEndpoint returns the daemon control channel endpoint for this platform.
func DaemonEndpoint() Endpoint {
	return UnixSocket(DaemonSocketPath)
}
