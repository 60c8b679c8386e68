package vpn

// RelayList is the daemon's view of the relay network.
type RelayList struct {
	Countries []RelayListCountry
	WireGuard WireGuardEndpointData
}

type RelayListCountry struct {
	Name   string
	Code   string
	Cities []RelayListCity
}

type RelayListCity struct {
	Name      string
	Code      string
	Latitude  float64
	Longitude float64
	Relays    []Relay
}

// RelayEndpointType is the service a relay provides.
type RelayEndpointType int

const (
	RelayOpenVPN RelayEndpointType = iota + 1
	RelayBridge
	RelayWireGuard
)

func (t RelayEndpointType) String() string {
	switch t {
	case RelayOpenVPN:
		return "openvpn"
	case RelayBridge:
		return "bridge"
	case RelayWireGuard:
		return "wireguard"
	default:
		return "unknown"
	}
}

type Relay struct {
	Hostname         string
	IPv4AddrIn       string
	IPv6AddrIn       *string
	IncludeInCountry bool
	Active           bool
	Owned            bool
	Provider         string
	Weight           uint64
	EndpointType     RelayEndpointType
	Daita            bool
}

type WireGuardEndpointData struct {
	PortRanges   [][2]uint32
	UDP2TCPPorts []uint32
}

// RelayCount returns the number of relays in the list.
func (l RelayList) RelayCount() int {
	n := 0
	for _, country := range l.Countries {
		for _, city := range country.Cities {
			n += len(city.Relays)
		}
	}
	return n
}
