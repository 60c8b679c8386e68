package vpn

// Settings is the daemon's full settings object.
type Settings struct {
	AllowLAN              bool
	AutoConnect           bool
	BlockWhenDisconnected bool
	ShowBetaReleases      bool
	Relay                 RelaySettings
	Tunnel                TunnelOptions
	Bridge                BridgeSettings
	BridgeState           BridgeState
	SplitTunnel           SplitTunnel
	Obfuscation           ObfuscationSettings
	CustomLists           []CustomList
	AccessMethods         AccessMethodSettings
}

// RelaySettings is either NormalRelaySettings or CustomRelaySettings.
type RelaySettings interface {
	isRelaySettings()
}

// NormalRelaySettings selects relays from the relay list by constraints.
type NormalRelaySettings struct {
	Location       Constraint[LocationConstraint]
	TunnelProtocol Constraint[TunnelType]
	Providers      []string
	Ownership      Ownership
	OpenVPN        OpenVPNConstraints
	WireGuard      WireGuardConstraints
}

// CustomRelaySettings pins the tunnel to a user supplied endpoint.
type CustomRelaySettings struct {
	Host   string
	Config ConnectionConfig
}

func (NormalRelaySettings) isRelaySettings() {}
func (CustomRelaySettings) isRelaySettings() {}

// ConnectionConfig is either OpenVPNConfig or WireGuardConfig.
type ConnectionConfig interface {
	isConnectionConfig()
}

type OpenVPNConfig struct {
	Address  string
	Protocol TransportProtocol
	Username string
	Password string
}

type WireGuardConfig struct {
	PrivateKey    []byte
	Addresses     []string
	PeerPublicKey []byte
	AllowedIPs    []string
	PeerEndpoint  string
	IPv4Gateway   string
	IPv6Gateway   *string
}

func (OpenVPNConfig) isConnectionConfig()   {}
func (WireGuardConfig) isConnectionConfig() {}

// GeographicLocation narrows a selection to a country, city or relay. Empty
// fields are not part of the selection.
type GeographicLocation struct {
	Country  string
	City     string
	Hostname string
}

// LocationConstraint is a custom list id or a geographic location.
type LocationConstraint struct {
	CustomList string
	Geographic GeographicLocation
}

// IsCustomList reports whether the constraint refers to a custom list.
func (l LocationConstraint) IsCustomList() bool { return l.CustomList != "" }

type OpenVPNConstraints struct {
	Port     Constraint[uint32]
	Protocol Constraint[TransportProtocol]
}

type WireGuardConstraints struct {
	Port          Constraint[uint32]
	IPVersion     Constraint[IPVersion]
	UseMultihop   bool
	EntryLocation Constraint[LocationConstraint]
}

// BridgeType selects which bridge settings are in effect.
type BridgeType int

const (
	BridgeNormal BridgeType = iota + 1
	BridgeCustom
)

type BridgeSettings struct {
	Type   BridgeType
	Normal BridgeConstraints
	Custom CustomProxy
}

type BridgeConstraints struct {
	Location  Constraint[LocationConstraint]
	Providers []string
	Ownership Ownership
}

// BridgeState controls whether OpenVPN traffic goes through a bridge.
type BridgeState int

const (
	BridgeAuto BridgeState = iota + 1
	BridgeOn
	BridgeOff
)

func (s BridgeState) String() string {
	switch s {
	case BridgeAuto:
		return "auto"
	case BridgeOn:
		return "on"
	case BridgeOff:
		return "off"
	default:
		return "unknown"
	}
}

type TunnelOptions struct {
	OpenVPN    OpenVPNOptions
	WireGuard  WireGuardOptions
	EnableIPv6 bool
	DNS        DNSOptions
}

type OpenVPNOptions struct {
	Mssfix *uint32
}

type WireGuardOptions struct {
	MTU *uint32
	// QuantumResistant is nil when the daemon decides automatically.
	QuantumResistant *bool
	Daita            DaitaSettings
}

type DaitaSettings struct {
	Enabled    bool
	DirectOnly bool
}

// DNSState selects default or custom DNS.
type DNSState int

const (
	DNSDefault DNSState = iota + 1
	DNSCustom
)

func (s DNSState) String() string {
	switch s {
	case DNSDefault:
		return "default"
	case DNSCustom:
		return "custom"
	default:
		return "unknown"
	}
}

type DNSOptions struct {
	State   DNSState
	Default DefaultDNSOptions
	Custom  []string
}

type DefaultDNSOptions struct {
	BlockAds          bool
	BlockTrackers     bool
	BlockMalware      bool
	BlockAdultContent bool
	BlockGambling     bool
	BlockSocialMedia  bool
}

// ObfuscationMode is the selected obfuscation.
type ObfuscationMode int

const (
	ObfuscationAuto ObfuscationMode = iota + 1
	ObfuscationOff
	ObfuscationModeUDP2TCP
	ObfuscationModeShadowsocks
)

func (m ObfuscationMode) String() string {
	switch m {
	case ObfuscationAuto:
		return "auto"
	case ObfuscationOff:
		return "off"
	case ObfuscationModeUDP2TCP:
		return "udp2tcp"
	case ObfuscationModeShadowsocks:
		return "shadowsocks"
	default:
		return "unknown"
	}
}

type ObfuscationSettings struct {
	Selected        ObfuscationMode
	UDP2TCPPort     Constraint[uint32]
	ShadowsocksPort Constraint[uint32]
}

type SplitTunnel struct {
	Enabled bool
	Apps    []string
}

// CustomList is a named set of locations.
type CustomList struct {
	ID        string
	Name      string
	Locations []GeographicLocation
}
