package managementv1

import "strconv"

// Every enum reserves zero for "unspecified" so that a missing value can be told
// apart from a real one.

type AfterDisconnect int32

const (
	AfterDisconnect_UNSPECIFIED AfterDisconnect = iota
	AfterDisconnect_NOTHING
	AfterDisconnect_BLOCK
	AfterDisconnect_RECONNECT
)

type TransportProtocol int32

const (
	TransportProtocol_UNSPECIFIED TransportProtocol = iota
	TransportProtocol_UDP
	TransportProtocol_TCP
)

type TunnelType int32

const (
	TunnelType_UNSPECIFIED TunnelType = iota
	TunnelType_OPENVPN
	TunnelType_WIREGUARD
)

type ProxyType int32

const (
	ProxyType_UNSPECIFIED ProxyType = iota
	ProxyType_SHADOWSOCKS
	ProxyType_CUSTOM
)

type ObfuscationType int32

const (
	ObfuscationType_UNSPECIFIED ObfuscationType = iota
	ObfuscationType_UDP2TCP
	ObfuscationType_SHADOWSOCKS
)

type FeatureIndicator int32

const (
	FeatureIndicator_UNSPECIFIED FeatureIndicator = iota
	FeatureIndicator_QUANTUM_RESISTANCE
	FeatureIndicator_MULTIHOP
	FeatureIndicator_BRIDGE_MODE
	FeatureIndicator_SPLIT_TUNNELING
	FeatureIndicator_LOCKDOWN_MODE
	FeatureIndicator_UDP_2_TCP
	FeatureIndicator_LAN_SHARING
	FeatureIndicator_DNS_CONTENT_BLOCKERS
	FeatureIndicator_CUSTOM_DNS
	FeatureIndicator_SERVER_IP_OVERRIDE
	FeatureIndicator_CUSTOM_MTU
	FeatureIndicator_CUSTOM_MSS_FIX
	FeatureIndicator_DAITA
	FeatureIndicator_SHADOWSOCKS
)

type ErrorCause int32

const (
	ErrorCause_UNSPECIFIED ErrorCause = iota
	ErrorCause_AUTH_FAILED
	ErrorCause_IPV6_UNAVAILABLE
	ErrorCause_SET_FIREWALL_POLICY_ERROR
	ErrorCause_SET_DNS_ERROR
	ErrorCause_START_TUNNEL_ERROR
	ErrorCause_CREATE_TUNNEL_DEVICE
	ErrorCause_TUNNEL_PARAMETER_ERROR
	ErrorCause_IS_OFFLINE
	ErrorCause_SPLIT_TUNNEL_ERROR
	ErrorCause_NEED_FULL_DISK_PERMISSIONS
	// Android only.
	ErrorCause_INVALID_DNS_SERVERS
	ErrorCause_NOT_PREPARED
	ErrorCause_OTHER_ALWAYS_ON_APP
	ErrorCause_OTHER_LEGACY_ALWAYS_ON_VPN
)

type AuthFailedError int32

const (
	AuthFailedError_UNSPECIFIED AuthFailedError = iota
	AuthFailedError_UNKNOWN
	AuthFailedError_INVALID_ACCOUNT
	AuthFailedError_EXPIRED_ACCOUNT
	AuthFailedError_TOO_MANY_CONNECTIONS
)

type GenerationError int32

const (
	GenerationError_UNSPECIFIED GenerationError = iota
	GenerationError_NO_MATCHING_RELAY
	GenerationError_NO_MATCHING_BRIDGE_RELAY
	GenerationError_NO_WIREGUARD_KEY
	GenerationError_CUSTOM_TUNNEL_HOST_RESOLUTION_ERROR
	GenerationError_NETWORK_IPV4_UNAVAILABLE
	GenerationError_NETWORK_IPV6_UNAVAILABLE
)

type FirewallPolicyErrorType int32

const (
	FirewallPolicyErrorType_UNSPECIFIED FirewallPolicyErrorType = iota
	FirewallPolicyErrorType_GENERIC
	FirewallPolicyErrorType_LOCKED
)

type Ownership int32

const (
	Ownership_UNSPECIFIED Ownership = iota
	Ownership_ANY
	Ownership_MULLVAD_OWNED
	Ownership_RENTED
)

type IpVersion int32

const (
	IpVersion_UNSPECIFIED IpVersion = iota
	IpVersion_V4
	IpVersion_V6
)

type BridgeType int32

const (
	BridgeType_UNSPECIFIED BridgeType = iota
	BridgeType_NORMAL
	BridgeType_CUSTOM
)

// TriState backs BridgeState and QuantumResistantState.
type TriState int32

const (
	TriState_UNSPECIFIED TriState = iota
	TriState_AUTO
	TriState_ON
	TriState_OFF
)

type DnsState int32

const (
	DnsState_UNSPECIFIED DnsState = iota
	DnsState_DEFAULT
	DnsState_CUSTOM
)

type SelectedObfuscation int32

const (
	// SelectedObfuscation_UNSPECIFIED selects automatic obfuscation.
	SelectedObfuscation_UNSPECIFIED SelectedObfuscation = iota
	SelectedObfuscation_AUTO
	SelectedObfuscation_OFF
	SelectedObfuscation_UDP2TCP
	SelectedObfuscation_SHADOWSOCKS
)

type RelayType int32

const (
	RelayType_UNSPECIFIED RelayType = iota
	RelayType_OPENVPN
	RelayType_BRIDGE
	RelayType_WIREGUARD
)

type DeviceStateKind int32

const (
	DeviceStateKind_UNSPECIFIED DeviceStateKind = iota
	DeviceStateKind_LOGGED_IN
	DeviceStateKind_LOGGED_OUT
	DeviceStateKind_REVOKED
)

type DeviceEventCause int32

const (
	DeviceEventCause_UNSPECIFIED DeviceEventCause = iota
	DeviceEventCause_LOGGED_IN
	DeviceEventCause_LOGGED_OUT
	DeviceEventCause_REVOKED
	DeviceEventCause_UPDATED
	DeviceEventCause_ROTATED_KEY
)

type AppUpgradeErrorKind int32

const (
	AppUpgradeErrorKind_UNSPECIFIED AppUpgradeErrorKind = iota
	AppUpgradeErrorKind_GENERAL_ERROR
	AppUpgradeErrorKind_DOWNLOAD_FAILED
	AppUpgradeErrorKind_VERIFICATION_FAILED
)

// EnumString formats an enum value for error messages.
func EnumString[E ~int32](name string, v E) string {
	return name + "(" + strconv.Itoa(int(v)) + ")"
}
