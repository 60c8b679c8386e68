package convert

import (
	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

var relayTypes = map[pb.RelayType]vpn.RelayEndpointType{
	pb.RelayType_OPENVPN:   vpn.RelayOpenVPN,
	pb.RelayType_BRIDGE:    vpn.RelayBridge,
	pb.RelayType_WIREGUARD: vpn.RelayWireGuard,
}

// RelayListFromWire converts the relay list.
func RelayListFromWire(l *pb.RelayList) (vpn.RelayList, error) {
	return relayList("relay_list", l)
}

func relayList(field string, l *pb.RelayList) (vpn.RelayList, error) {
	if l == nil {
		return vpn.RelayList{}, missing(field)
	}
	if l.EndpointData == nil {
		return vpn.RelayList{}, missing(join(field, "endpoint_data"))
	}
	out := vpn.RelayList{
		Countries: make([]vpn.RelayListCountry, 0, len(l.Countries)),
		WireGuard: vpn.WireGuardEndpointData{
			PortRanges:   make([][2]uint32, 0, len(l.EndpointData.PortRanges)),
			UDP2TCPPorts: append([]uint32(nil), l.EndpointData.Udp2TcpPorts...),
		},
	}
	for _, r := range l.EndpointData.PortRanges {
		if r == nil {
			return vpn.RelayList{}, missing(join(field, "endpoint_data.port_ranges"))
		}
		if r.First > r.Last {
			return vpn.RelayList{}, invalid(join(field, "endpoint_data.port_ranges"), "range %d-%d is reversed", r.First, r.Last)
		}
		out.WireGuard.PortRanges = append(out.WireGuard.PortRanges, [2]uint32{r.First, r.Last})
	}
	for _, c := range l.Countries {
		if c == nil {
			return vpn.RelayList{}, missing(join(field, "countries"))
		}
		country := vpn.RelayListCountry{Name: c.Name, Code: c.Code, Cities: make([]vpn.RelayListCity, 0, len(c.Cities))}
		for _, ci := range c.Cities {
			if ci == nil {
				return vpn.RelayList{}, missing(join(field, "countries.cities"))
			}
			city := vpn.RelayListCity{
				Name:      ci.Name,
				Code:      ci.Code,
				Latitude:  ci.Latitude,
				Longitude: ci.Longitude,
				Relays:    make([]vpn.Relay, 0, len(ci.Relays)),
			}
			for _, r := range ci.Relays {
				relay, err := relayFromWire(join(field, "countries.cities.relays"), r)
				if err != nil {
					return vpn.RelayList{}, err
				}
				city.Relays = append(city.Relays, relay)
			}
			country.Cities = append(country.Cities, city)
		}
		out.Countries = append(out.Countries, country)
	}
	return out, nil
}

func relayFromWire(field string, r *pb.Relay) (vpn.Relay, error) {
	if r == nil {
		return vpn.Relay{}, missing(field)
	}
	t, err := enum(join(field, "endpoint_type"), relayTypes, r.EndpointType)
	if err != nil {
		return vpn.Relay{}, err
	}
	return vpn.Relay{
		Hostname:         r.Hostname,
		IPv4AddrIn:       r.Ipv4AddrIn,
		IPv6AddrIn:       cloneString(r.Ipv6AddrIn),
		IncludeInCountry: r.IncludeInCountry,
		Active:           r.Active,
		Owned:            r.Owned,
		Provider:         r.Provider,
		Weight:           r.Weight,
		EndpointType:     t,
		Daita:            r.Daita,
	}, nil
}
