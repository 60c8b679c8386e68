package managementv1

import (
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Oneof fields are modeled as structs holding one pointer per variant. Exactly
// one pointer is expected to be set; a message with none set is malformed.

// Tunnel state.

type TunnelState struct {
	Disconnected  *TunnelStateDisconnected  `json:"disconnected,omitempty"`
	Connecting    *TunnelStateConnecting    `json:"connecting,omitempty"`
	Connected     *TunnelStateConnected     `json:"connected,omitempty"`
	Disconnecting *TunnelStateDisconnecting `json:"disconnecting,omitempty"`
	Error         *TunnelStateError         `json:"error,omitempty"`
}

type TunnelStateDisconnected struct {
	DisconnectedLocation *GeoIpLocation `json:"disconnected_location,omitempty"`
	LockedDown           bool           `json:"locked_down,omitempty"`
}

type TunnelStateConnecting struct {
	RelayInfo         *TunnelStateRelayInfo `json:"relay_info,omitempty"`
	FeatureIndicators *FeatureIndicators    `json:"feature_indicators,omitempty"`
}

type TunnelStateConnected struct {
	RelayInfo         *TunnelStateRelayInfo `json:"relay_info,omitempty"`
	FeatureIndicators *FeatureIndicators    `json:"feature_indicators,omitempty"`
}

type TunnelStateDisconnecting struct {
	AfterDisconnect AfterDisconnect `json:"after_disconnect,omitempty"`
}

type TunnelStateError struct {
	ErrorState *ErrorState `json:"error_state,omitempty"`
}

type ErrorState struct {
	Cause           ErrorCause           `json:"cause,omitempty"`
	BlockingError   *FirewallPolicyError `json:"blocking_error,omitempty"`
	AuthFailedError AuthFailedError      `json:"auth_failed_error,omitempty"`
	ParameterError  GenerationError      `json:"parameter_error,omitempty"`
	PolicyError     *FirewallPolicyError `json:"policy_error,omitempty"`
}

type FirewallPolicyError struct {
	Type     FirewallPolicyErrorType `json:"type,omitempty"`
	LockPid  uint32                  `json:"lock_pid,omitempty"`
	LockName *string                 `json:"lock_name,omitempty"`
}

type FeatureIndicators struct {
	ActiveFeatures []FeatureIndicator `json:"active_features,omitempty"`
}

type TunnelStateRelayInfo struct {
	TunnelEndpoint *TunnelEndpoint `json:"tunnel_endpoint,omitempty"`
	Location       *GeoIpLocation  `json:"location,omitempty"`
}

type TunnelEndpoint struct {
	Address          string               `json:"address,omitempty"`
	Protocol         TransportProtocol    `json:"protocol,omitempty"`
	TunnelType       TunnelType           `json:"tunnel_type,omitempty"`
	QuantumResistant bool                 `json:"quantum_resistant,omitempty"`
	Daita            bool                 `json:"daita,omitempty"`
	Proxy            *ProxyEndpoint       `json:"proxy,omitempty"`
	Obfuscation      *ObfuscationEndpoint `json:"obfuscation,omitempty"`
	EntryEndpoint    *Endpoint            `json:"entry_endpoint,omitempty"`
}

type Endpoint struct {
	Address  string            `json:"address,omitempty"`
	Protocol TransportProtocol `json:"protocol,omitempty"`
}

type ProxyEndpoint struct {
	Address   string            `json:"address,omitempty"`
	Protocol  TransportProtocol `json:"protocol,omitempty"`
	ProxyType ProxyType         `json:"proxy_type,omitempty"`
}

type ObfuscationEndpoint struct {
	Address         string            `json:"address,omitempty"`
	Port            uint32            `json:"port,omitempty"`
	Protocol        TransportProtocol `json:"protocol,omitempty"`
	ObfuscationType ObfuscationType   `json:"obfuscation_type,omitempty"`
}

type GeoIpLocation struct {
	Ipv4           *string `json:"ipv4,omitempty"`
	Ipv6           *string `json:"ipv6,omitempty"`
	Country        string  `json:"country,omitempty"`
	City           *string `json:"city,omitempty"`
	Latitude       float64 `json:"latitude,omitempty"`
	Longitude      float64 `json:"longitude,omitempty"`
	MullvadExitIp  bool    `json:"mullvad_exit_ip,omitempty"`
	Hostname       *string `json:"hostname,omitempty"`
	BridgeHostname *string `json:"bridge_hostname,omitempty"`
	EntryHostname  *string `json:"entry_hostname,omitempty"`
	Provider       *string `json:"provider,omitempty"`
}

// Settings.

type Settings struct {
	RelaySettings         *RelaySettings           `json:"relay_settings,omitempty"`
	BridgeSettings        *BridgeSettings          `json:"bridge_settings,omitempty"`
	BridgeState           *BridgeState             `json:"bridge_state,omitempty"`
	AllowLan              bool                     `json:"allow_lan,omitempty"`
	BlockWhenDisconnected bool                     `json:"block_when_disconnected,omitempty"`
	AutoConnect           bool                     `json:"auto_connect,omitempty"`
	ShowBetaReleases      bool                     `json:"show_beta_releases,omitempty"`
	TunnelOptions         *TunnelOptions           `json:"tunnel_options,omitempty"`
	ObfuscationSettings   *ObfuscationSettings     `json:"obfuscation_settings,omitempty"`
	SplitTunnel           *SplitTunnelSettings     `json:"split_tunnel,omitempty"`
	CustomLists           *CustomListSettings      `json:"custom_lists,omitempty"`
	ApiAccessMethods      *ApiAccessMethodSettings `json:"api_access_methods,omitempty"`
}

type RelaySettings struct {
	Normal *NormalRelaySettings `json:"normal,omitempty"`
	Custom *CustomRelaySettings `json:"custom,omitempty"`
}

type NormalRelaySettings struct {
	Location             *LocationConstraint   `json:"location,omitempty"`
	Providers            []string              `json:"providers,omitempty"`
	Ownership            Ownership             `json:"ownership,omitempty"`
	TunnelType           *TunnelType           `json:"tunnel_type,omitempty"`
	WireguardConstraints *WireguardConstraints `json:"wireguard_constraints,omitempty"`
	OpenvpnConstraints   *OpenvpnConstraints   `json:"openvpn_constraints,omitempty"`
}

type LocationConstraint struct {
	CustomList *string                       `json:"custom_list,omitempty"`
	Location   *GeographicLocationConstraint `json:"location,omitempty"`
}

type GeographicLocationConstraint struct {
	Country  string  `json:"country,omitempty"`
	City     *string `json:"city,omitempty"`
	Hostname *string `json:"hostname,omitempty"`
}

type WireguardConstraints struct {
	Port          *uint32             `json:"port,omitempty"`
	IpVersion     *IpVersion          `json:"ip_version,omitempty"`
	UseMultihop   bool                `json:"use_multihop,omitempty"`
	EntryLocation *LocationConstraint `json:"entry_location,omitempty"`
}

type OpenvpnConstraints struct {
	Port *TransportPort `json:"port,omitempty"`
}

type TransportPort struct {
	Protocol TransportProtocol `json:"protocol,omitempty"`
	Port     *uint32           `json:"port,omitempty"`
}

type CustomRelaySettings struct {
	Host   string            `json:"host,omitempty"`
	Config *ConnectionConfig `json:"config,omitempty"`
}

type ConnectionConfig struct {
	Openvpn   *OpenvpnConfig   `json:"openvpn,omitempty"`
	Wireguard *WireguardConfig `json:"wireguard,omitempty"`
}

type OpenvpnConfig struct {
	Address  string            `json:"address,omitempty"`
	Protocol TransportProtocol `json:"protocol,omitempty"`
	Username string            `json:"username,omitempty"`
	Password string            `json:"password,omitempty"`
}

type WireguardConfig struct {
	Tunnel      *WireguardTunnelConfig `json:"tunnel,omitempty"`
	Peer        *WireguardPeerConfig   `json:"peer,omitempty"`
	Ipv4Gateway string                 `json:"ipv4_gateway,omitempty"`
	Ipv6Gateway *string                `json:"ipv6_gateway,omitempty"`
}

type WireguardTunnelConfig struct {
	PrivateKey []byte   `json:"private_key,omitempty"`
	Addresses  []string `json:"addresses,omitempty"`
}

type WireguardPeerConfig struct {
	PublicKey  []byte   `json:"public_key,omitempty"`
	AllowedIps []string `json:"allowed_ips,omitempty"`
	Endpoint   string   `json:"endpoint,omitempty"`
}

type BridgeSettings struct {
	BridgeType BridgeType         `json:"bridge_type,omitempty"`
	Normal     *BridgeConstraints `json:"normal,omitempty"`
	Custom     *CustomProxy       `json:"custom,omitempty"`
}

type BridgeConstraints struct {
	Location  *LocationConstraint `json:"location,omitempty"`
	Providers []string            `json:"providers,omitempty"`
	Ownership Ownership           `json:"ownership,omitempty"`
}

type BridgeState struct {
	State TriState `json:"state,omitempty"`
}

type QuantumResistantState struct {
	State TriState `json:"state,omitempty"`
}

type TunnelOptions struct {
	Openvpn    *OpenvpnOptions   `json:"openvpn,omitempty"`
	Wireguard  *WireguardOptions `json:"wireguard,omitempty"`
	Generic    *GenericOptions   `json:"generic,omitempty"`
	DnsOptions *DnsOptions       `json:"dns_options,omitempty"`
}

type OpenvpnOptions struct {
	Mssfix *uint32 `json:"mssfix,omitempty"`
}

type WireguardOptions struct {
	Mtu              *uint32                `json:"mtu,omitempty"`
	QuantumResistant *QuantumResistantState `json:"quantum_resistant,omitempty"`
	Daita            *DaitaSettings         `json:"daita,omitempty"`
}

type DaitaSettings struct {
	Enabled    bool `json:"enabled,omitempty"`
	DirectOnly bool `json:"direct_only,omitempty"`
}

type GenericOptions struct {
	EnableIpv6 bool `json:"enable_ipv6,omitempty"`
}

type DnsOptions struct {
	State          DnsState           `json:"state,omitempty"`
	DefaultOptions *DefaultDnsOptions `json:"default_options,omitempty"`
	CustomOptions  *CustomDnsOptions  `json:"custom_options,omitempty"`
}

type DefaultDnsOptions struct {
	BlockAds          bool `json:"block_ads,omitempty"`
	BlockTrackers     bool `json:"block_trackers,omitempty"`
	BlockMalware      bool `json:"block_malware,omitempty"`
	BlockAdultContent bool `json:"block_adult_content,omitempty"`
	BlockGambling     bool `json:"block_gambling,omitempty"`
	BlockSocialMedia  bool `json:"block_social_media,omitempty"`
}

type CustomDnsOptions struct {
	Addresses []string `json:"addresses,omitempty"`
}

type ObfuscationSettings struct {
	SelectedObfuscation SelectedObfuscation         `json:"selected_obfuscation,omitempty"`
	Udp2Tcp             *Udp2TcpObfuscationSettings `json:"udp2tcp,omitempty"`
	Shadowsocks         *ShadowsocksSettings        `json:"shadowsocks,omitempty"`
}

type Udp2TcpObfuscationSettings struct {
	Port *uint32 `json:"port,omitempty"`
}

type ShadowsocksSettings struct {
	Port *uint32 `json:"port,omitempty"`
}

type SplitTunnelSettings struct {
	EnableExclusions bool     `json:"enable_exclusions,omitempty"`
	AppsList         []string `json:"apps_list,omitempty"`
}

// Custom lists.

type CustomListSettings struct {
	CustomLists []*CustomList `json:"custom_lists,omitempty"`
}

type CustomList struct {
	Id        string                          `json:"id,omitempty"`
	Name      string                          `json:"name,omitempty"`
	Locations []*GeographicLocationConstraint `json:"locations,omitempty"`
}

// API access methods.

type UUID struct {
	Value string `json:"value,omitempty"`
}

type ApiAccessMethodSettings struct {
	Direct            *AccessMethodSetting   `json:"direct,omitempty"`
	MullvadBridges    *AccessMethodSetting   `json:"mullvad_bridges,omitempty"`
	EncryptedDnsProxy *AccessMethodSetting   `json:"encrypted_dns_proxy,omitempty"`
	Custom            []*AccessMethodSetting `json:"custom,omitempty"`
}

type AccessMethodSetting struct {
	Id           *UUID         `json:"id,omitempty"`
	Name         string        `json:"name,omitempty"`
	Enabled      bool          `json:"enabled,omitempty"`
	AccessMethod *AccessMethod `json:"access_method,omitempty"`
}

type NewAccessMethodSetting struct {
	Name         string        `json:"name,omitempty"`
	Enabled      bool          `json:"enabled,omitempty"`
	AccessMethod *AccessMethod `json:"access_method,omitempty"`
}

type AccessMethod struct {
	Direct            *AccessMethodDirect            `json:"direct,omitempty"`
	Bridges           *AccessMethodBridges           `json:"bridges,omitempty"`
	EncryptedDnsProxy *AccessMethodEncryptedDnsProxy `json:"encrypted_dns_proxy,omitempty"`
	Custom            *CustomProxy                   `json:"custom,omitempty"`
}

type AccessMethodDirect struct{}

type AccessMethodBridges struct{}

type AccessMethodEncryptedDnsProxy struct{}

type CustomProxy struct {
	Socks5Local  *Socks5Local  `json:"socks5local,omitempty"`
	Socks5Remote *Socks5Remote `json:"socks5remote,omitempty"`
	Shadowsocks  *Shadowsocks  `json:"shadowsocks,omitempty"`
}

type Socks5Local struct {
	RemoteIp                string            `json:"remote_ip,omitempty"`
	RemotePort              uint32            `json:"remote_port,omitempty"`
	RemoteTransportProtocol TransportProtocol `json:"remote_transport_protocol,omitempty"`
	LocalPort               uint32            `json:"local_port,omitempty"`
}

type Socks5Remote struct {
	Ip   string     `json:"ip,omitempty"`
	Port uint32     `json:"port,omitempty"`
	Auth *SocksAuth `json:"auth,omitempty"`
}

type SocksAuth struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

type Shadowsocks struct {
	Ip       string `json:"ip,omitempty"`
	Port     uint32 `json:"port,omitempty"`
	Password string `json:"password,omitempty"`
	Cipher   string `json:"cipher,omitempty"`
}

// Relays.

type RelayList struct {
	Countries    []*RelayListCountry    `json:"countries,omitempty"`
	EndpointData *WireguardEndpointData `json:"endpoint_data,omitempty"`
}

type RelayListCountry struct {
	Name   string           `json:"name,omitempty"`
	Code   string           `json:"code,omitempty"`
	Cities []*RelayListCity `json:"cities,omitempty"`
}

type RelayListCity struct {
	Name      string   `json:"name,omitempty"`
	Code      string   `json:"code,omitempty"`
	Latitude  float64  `json:"latitude,omitempty"`
	Longitude float64  `json:"longitude,omitempty"`
	Relays    []*Relay `json:"relays,omitempty"`
}

type Relay struct {
	Hostname         string    `json:"hostname,omitempty"`
	Ipv4AddrIn       string    `json:"ipv4_addr_in,omitempty"`
	Ipv6AddrIn       *string   `json:"ipv6_addr_in,omitempty"`
	IncludeInCountry bool      `json:"include_in_country,omitempty"`
	Active           bool      `json:"active,omitempty"`
	Owned            bool      `json:"owned,omitempty"`
	Provider         string    `json:"provider,omitempty"`
	Weight           uint64    `json:"weight,omitempty"`
	EndpointType     RelayType `json:"endpoint_type,omitempty"`
	Daita            bool      `json:"daita,omitempty"`
}

type WireguardEndpointData struct {
	PortRanges   []*PortRange `json:"port_ranges,omitempty"`
	Udp2TcpPorts []uint32     `json:"udp2tcp_ports,omitempty"`
}

type PortRange struct {
	First uint32 `json:"first,omitempty"`
	Last  uint32 `json:"last,omitempty"`
}

// Account and devices.

type AccountData struct {
	Id     string                 `json:"id,omitempty"`
	Expiry *timestamppb.Timestamp `json:"expiry,omitempty"`
}

type AccountHistory struct {
	Number *string `json:"number,omitempty"`
}

type VoucherSubmission struct {
	SecondsAdded uint64                 `json:"seconds_added,omitempty"`
	NewExpiry    *timestamppb.Timestamp `json:"new_expiry,omitempty"`
}

type Device struct {
	Id        string                 `json:"id,omitempty"`
	Name      string                 `json:"name,omitempty"`
	Pubkey    []byte                 `json:"pubkey,omitempty"`
	HijackDns bool                   `json:"hijack_dns,omitempty"`
	Created   *timestamppb.Timestamp `json:"created,omitempty"`
}

type DeviceList struct {
	Devices []*Device `json:"devices,omitempty"`
}

type AccountAndDevice struct {
	AccountNumber string  `json:"account_number,omitempty"`
	Device        *Device `json:"device,omitempty"`
}

type DeviceState struct {
	State  DeviceStateKind   `json:"state,omitempty"`
	Device *AccountAndDevice `json:"device,omitempty"`
}

type DeviceEvent struct {
	Cause    DeviceEventCause `json:"cause,omitempty"`
	NewState *DeviceState     `json:"new_state,omitempty"`
}

type RemoveDeviceEvent struct {
	AccountNumber string    `json:"account_number,omitempty"`
	NewDeviceList []*Device `json:"new_device_list,omitempty"`
}

type DeviceRemoval struct {
	AccountNumber string `json:"account_number,omitempty"`
	DeviceId      string `json:"device_id,omitempty"`
}

// Versions and upgrades.

type AppVersionInfo struct {
	Supported        bool              `json:"supported,omitempty"`
	SuggestedUpgrade *SuggestedUpgrade `json:"suggested_upgrade,omitempty"`
}

type SuggestedUpgrade struct {
	Version   string `json:"version,omitempty"`
	Changelog string `json:"changelog,omitempty"`
	Beta      bool   `json:"beta,omitempty"`
}

// Event feeds.

type DaemonEvent struct {
	TunnelState     *TunnelState         `json:"tunnel_state,omitempty"`
	Settings        *Settings            `json:"settings,omitempty"`
	RelayList       *RelayList           `json:"relay_list,omitempty"`
	VersionInfo     *AppVersionInfo      `json:"version_info,omitempty"`
	Device          *DeviceEvent         `json:"device,omitempty"`
	RemoveDevice    *RemoveDeviceEvent   `json:"remove_device,omitempty"`
	NewAccessMethod *AccessMethodSetting `json:"new_access_method,omitempty"`
}

type AppUpgradeEvent struct {
	DownloadStarting   *AppUpgradeDownloadStarting   `json:"download_starting,omitempty"`
	DownloadProgress   *AppUpgradeDownloadProgress   `json:"download_progress,omitempty"`
	UpgradeAborted     *AppUpgradeAborted            `json:"upgrade_aborted,omitempty"`
	VerifyingInstaller *AppUpgradeVerifyingInstaller `json:"verifying_installer,omitempty"`
	VerifiedInstaller  *AppUpgradeVerifiedInstaller  `json:"verified_installer,omitempty"`
	Error              *AppUpgradeError              `json:"error,omitempty"`
}

type AppUpgradeDownloadStarting struct{}

type AppUpgradeDownloadProgress struct {
	Server   string               `json:"server,omitempty"`
	Progress uint32               `json:"progress,omitempty"`
	TimeLeft *durationpb.Duration `json:"time_left,omitempty"`
}

type AppUpgradeAborted struct{}

type AppUpgradeVerifyingInstaller struct{}

type AppUpgradeVerifiedInstaller struct{}

type AppUpgradeError struct {
	Error AppUpgradeErrorKind `json:"error,omitempty"`
}
