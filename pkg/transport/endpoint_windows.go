//go:build windows

package transport

// DaemonPipePath is the named pipe the daemon listens on.
const DaemonPipePath = `\\.\pipe\` + ProductName

// DaemonEndpoint returns the daemon control channel endpoint for this platform.
func DaemonEndpoint() Endpoint {
	return NamedPipe(DaemonPipePath)
}
