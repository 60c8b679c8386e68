package vpn

// TunnelState is the state of the daemon's tunnel.
type TunnelState interface {
	Accept(v TunnelStateVisitor)
	// Name is the short state name used in logs and output.
	Name() string
}

// TunnelStateVisitor handles every tunnel state variant.
type TunnelStateVisitor interface {
	Disconnected(TunnelDisconnected)
	Connecting(TunnelConnecting)
	Connected(TunnelConnected)
	Disconnecting(TunnelDisconnecting)
	Error(TunnelError)
}

type TunnelDisconnected struct {
	Location   *Location
	LockedDown bool
}

type TunnelConnecting struct {
	Details  *RelayInfo
	Features []FeatureIndicator
}

type TunnelConnected struct {
	Details  RelayInfo
	Features []FeatureIndicator
}

type TunnelDisconnecting struct {
	After AfterDisconnect
}

type TunnelError struct {
	State ErrorState
}

func (s TunnelDisconnected) Accept(v TunnelStateVisitor)  { v.Disconnected(s) }
func (s TunnelConnecting) Accept(v TunnelStateVisitor)    { v.Connecting(s) }
func (s TunnelConnected) Accept(v TunnelStateVisitor)     { v.Connected(s) }
func (s TunnelDisconnecting) Accept(v TunnelStateVisitor) { v.Disconnecting(s) }
func (s TunnelError) Accept(v TunnelStateVisitor)         { v.Error(s) }

func (TunnelDisconnected) Name() string  { return "disconnected" }
func (TunnelConnecting) Name() string    { return "connecting" }
func (TunnelConnected) Name() string     { return "connected" }
func (TunnelDisconnecting) Name() string { return "disconnecting" }
func (TunnelError) Name() string         { return "error" }

// AfterDisconnect is what the daemon does once a disconnect completes.
type AfterDisconnect int

const (
	AfterDisconnectNothing AfterDisconnect = iota + 1
	AfterDisconnectBlock
	AfterDisconnectReconnect
)

func (a AfterDisconnect) String() string {
	switch a {
	case AfterDisconnectNothing:
		return "nothing"
	case AfterDisconnectBlock:
		return "block"
	case AfterDisconnectReconnect:
		return "reconnect"
	default:
		return "unknown"
	}
}

// ErrorCause is the reason the tunnel entered the error state.
type ErrorCause int

const (
	CauseAuthFailed ErrorCause = iota + 1
	CauseIPv6Unavailable
	CauseSetFirewallPolicyError
	CauseSetDNSError
	CauseStartTunnelError
	CauseCreateTunnelDevice
	CauseTunnelParameterError
	CauseIsOffline
	CauseSplitTunnelError
	CauseNeedFullDiskPermissions
)

var errorCauseNames = map[ErrorCause]string{
	CauseAuthFailed:              "auth failed",
	CauseIPv6Unavailable:         "ipv6 unavailable",
	CauseSetFirewallPolicyError:  "failed to set firewall policy",
	CauseSetDNSError:             "failed to set dns",
	CauseStartTunnelError:        "failed to start tunnel",
	CauseCreateTunnelDevice:      "failed to create tunnel device",
	CauseTunnelParameterError:    "tunnel parameter error",
	CauseIsOffline:               "offline",
	CauseSplitTunnelError:        "split tunnel error",
	CauseNeedFullDiskPermissions: "needs full disk access",
}

func (c ErrorCause) String() string {
	if name, ok := errorCauseNames[c]; ok {
		return name
	}
	return "unknown"
}

// AuthFailedError details CauseAuthFailed.
type AuthFailedError int

const (
	AuthFailedUnknown AuthFailedError = iota + 1
	AuthFailedInvalidAccount
	AuthFailedExpiredAccount
	AuthFailedTooManyConnections
)

// TunnelParameterError details CauseTunnelParameterError.
type TunnelParameterError int

const (
	ParameterNoMatchingRelay TunnelParameterError = iota + 1
	ParameterNoMatchingBridgeRelay
	ParameterNoWireguardKey
	ParameterCustomTunnelHostResolution
	ParameterNetworkIPv4Unavailable
	ParameterNetworkIPv6Unavailable
)

// FirewallPolicyErrorType classifies a firewall policy failure.
type FirewallPolicyErrorType int

const (
	FirewallGeneric FirewallPolicyErrorType = iota + 1
	// FirewallLocked means another process holds the firewall transaction lock.
	FirewallLocked
)

type FirewallPolicyError struct {
	Type FirewallPolicyErrorType
	// LockName and LockPID identify the lock holder for FirewallLocked.
	LockName string
	LockPID  uint32
}

// ErrorState describes the tunnel error state. Only the detail matching Cause
// is populated.
type ErrorState struct {
	Cause ErrorCause
	// BlockingError is set when the daemon failed to block traffic.
	BlockingError  *FirewallPolicyError
	AuthFailed     AuthFailedError
	ParameterError TunnelParameterError
	PolicyError    *FirewallPolicyError
}

// IsBlocking reports whether traffic is being blocked in the error state.
func (e ErrorState) IsBlocking() bool { return e.BlockingError == nil }

// FeatureIndicator names a feature active on the current tunnel.
type FeatureIndicator int

const (
	FeatureQuantumResistance FeatureIndicator = iota + 1
	FeatureMultihop
	FeatureBridgeMode
	FeatureSplitTunneling
	FeatureLockdownMode
	FeatureUDP2TCP
	FeatureLANSharing
	FeatureDNSContentBlockers
	FeatureCustomDNS
	FeatureServerIPOverride
	FeatureCustomMTU
	FeatureCustomMSSFix
	FeatureDaita
	FeatureShadowsocks
)

var featureNames = map[FeatureIndicator]string{
	FeatureQuantumResistance:  "quantum resistance",
	FeatureMultihop:           "multihop",
	FeatureBridgeMode:         "bridge mode",
	FeatureSplitTunneling:     "split tunneling",
	FeatureLockdownMode:       "lockdown mode",
	FeatureUDP2TCP:            "udp2tcp",
	FeatureLANSharing:         "lan sharing",
	FeatureDNSContentBlockers: "dns content blockers",
	FeatureCustomDNS:          "custom dns",
	FeatureServerIPOverride:   "server ip override",
	FeatureCustomMTU:          "custom mtu",
	FeatureCustomMSSFix:       "custom mssfix",
	FeatureDaita:              "daita",
	FeatureShadowsocks:        "shadowsocks",
}

func (f FeatureIndicator) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return "unknown"
}

// RelayInfo describes the relay a tunnel is using.
type RelayInfo struct {
	Endpoint TunnelEndpoint
	Location *Location
}

type TunnelEndpoint struct {
	Address          string
	Protocol         TransportProtocol
	TunnelType       TunnelType
	QuantumResistant bool
	Daita            bool
	Proxy            *ProxyEndpoint
	Obfuscation      *ObfuscationEndpoint
	Entry            *Endpoint
}

type Endpoint struct {
	Address  string
	Protocol TransportProtocol
}

// ProxyType is the kind of proxy in front of an OpenVPN tunnel.
type ProxyType int

const (
	ProxyShadowsocks ProxyType = iota + 1
	ProxyCustom
)

type ProxyEndpoint struct {
	Address   string
	Protocol  TransportProtocol
	ProxyType ProxyType
}

// ObfuscationType is the obfuscation protocol wrapping a tunnel.
type ObfuscationType int

const (
	ObfuscationUDP2TCP ObfuscationType = iota + 1
	ObfuscationShadowsocks
)

type ObfuscationEndpoint struct {
	Address  string
	Port     uint32
	Protocol TransportProtocol
	Type     ObfuscationType
}

// Location is a geographic location as reported by the daemon. Optional
// fields are nil when the daemon did not send them.
type Location struct {
	IPv4           *string
	IPv6           *string
	Country        string
	City           *string
	Latitude       float64
	Longitude      float64
	MullvadExitIP  bool
	Hostname       *string
	BridgeHostname *string
	EntryHostname  *string
	Provider       *string
}
