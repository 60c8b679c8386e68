package convert

import (
	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

var ownerships = map[pb.Ownership]vpn.Ownership{
	pb.Ownership_ANY:           vpn.OwnershipAny,
	pb.Ownership_MULLVAD_OWNED: vpn.OwnershipMullvadOwned,
	pb.Ownership_RENTED:        vpn.OwnershipRented,
}

var ipVersions = map[pb.IpVersion]vpn.IPVersion{
	pb.IpVersion_V4: vpn.IPv4,
	pb.IpVersion_V6: vpn.IPv6,
}

var bridgeTypes = map[pb.BridgeType]vpn.BridgeType{
	pb.BridgeType_NORMAL: vpn.BridgeNormal,
	pb.BridgeType_CUSTOM: vpn.BridgeCustom,
}

var bridgeStates = map[pb.TriState]vpn.BridgeState{
	pb.TriState_AUTO: vpn.BridgeAuto,
	pb.TriState_ON:   vpn.BridgeOn,
	pb.TriState_OFF:  vpn.BridgeOff,
}

var dnsStates = map[pb.DnsState]vpn.DNSState{
	pb.DnsState_DEFAULT: vpn.DNSDefault,
	pb.DnsState_CUSTOM:  vpn.DNSCustom,
}

// Unspecified selects auto; the wire format defines that default.
var obfuscationModes = map[pb.SelectedObfuscation]vpn.ObfuscationMode{
	pb.SelectedObfuscation_UNSPECIFIED: vpn.ObfuscationAuto,
	pb.SelectedObfuscation_AUTO:        vpn.ObfuscationAuto,
	pb.SelectedObfuscation_OFF:         vpn.ObfuscationOff,
	pb.SelectedObfuscation_UDP2TCP:     vpn.ObfuscationModeUDP2TCP,
	pb.SelectedObfuscation_SHADOWSOCKS: vpn.ObfuscationModeShadowsocks,
}

var (
	transportProtocolsToWire = reverse(transportProtocols)
	tunnelTypesToWire        = reverse(tunnelTypes)
	ownershipsToWire         = reverse(ownerships)
	ipVersionsToWire         = reverse(ipVersions)
	bridgeTypesToWire        = reverse(bridgeTypes)
	bridgeStatesToWire       = reverse(bridgeStates)
	dnsStatesToWire          = reverse(dnsStates)
	obfuscationModesToWire   = map[vpn.ObfuscationMode]pb.SelectedObfuscation{
		vpn.ObfuscationAuto:            pb.SelectedObfuscation_AUTO,
		vpn.ObfuscationOff:             pb.SelectedObfuscation_OFF,
		vpn.ObfuscationModeUDP2TCP:     pb.SelectedObfuscation_UDP2TCP,
		vpn.ObfuscationModeShadowsocks: pb.SelectedObfuscation_SHADOWSOCKS,
	}
)

// SettingsFromWire converts the daemon settings.
func SettingsFromWire(s *pb.Settings) (vpn.Settings, error) {
	return settings("settings", s)
}

func settings(field string, s *pb.Settings) (vpn.Settings, error) {
	if s == nil {
		return vpn.Settings{}, missing(field)
	}
	out := vpn.Settings{
		AllowLAN:              s.AllowLan,
		AutoConnect:           s.AutoConnect,
		BlockWhenDisconnected: s.BlockWhenDisconnected,
		ShowBetaReleases:      s.ShowBetaReleases,
	}
	var err error
	if out.Relay, err = relaySettings(join(field, "relay_settings"), s.RelaySettings); err != nil {
		return vpn.Settings{}, err
	}
	if out.Tunnel, err = tunnelOptions(join(field, "tunnel_options"), s.TunnelOptions); err != nil {
		return vpn.Settings{}, err
	}
	if out.Bridge, err = bridgeSettings(join(field, "bridge_settings"), s.BridgeSettings); err != nil {
		return vpn.Settings{}, err
	}
	if s.BridgeState == nil {
		return vpn.Settings{}, missing(join(field, "bridge_state"))
	}
	if out.BridgeState, err = enum(join(field, "bridge_state.state"), bridgeStates, s.BridgeState.State); err != nil {
		return vpn.Settings{}, err
	}
	if out.Obfuscation, err = obfuscationSettings(join(field, "obfuscation_settings"), s.ObfuscationSettings); err != nil {
		return vpn.Settings{}, err
	}
	if st := s.SplitTunnel; st != nil {
		out.SplitTunnel = vpn.SplitTunnel{Enabled: st.EnableExclusions, Apps: append([]string(nil), st.AppsList...)}
	}
	if s.CustomLists != nil {
		if out.CustomLists, err = customLists(join(field, "custom_lists"), s.CustomLists.CustomLists); err != nil {
			return vpn.Settings{}, err
		}
	}
	if out.AccessMethods, err = accessMethodSettings(join(field, "api_access_methods"), s.ApiAccessMethods); err != nil {
		return vpn.Settings{}, err
	}
	return out, nil
}

func relaySettings(field string, r *pb.RelaySettings) (vpn.RelaySettings, error) {
	if r == nil {
		return nil, missing(field)
	}
	switch {
	case r.Normal != nil:
		return normalRelaySettings(join(field, "normal"), r.Normal)
	case r.Custom != nil:
		return customRelaySettings(join(field, "custom"), r.Custom)
	}
	return nil, invalid(field, "no endpoint set")
}

func normalRelaySettings(field string, n *pb.NormalRelaySettings) (vpn.NormalRelaySettings, error) {
	own, err := enum(join(field, "ownership"), ownerships, n.Ownership)
	if err != nil {
		return vpn.NormalRelaySettings{}, err
	}
	out := vpn.NormalRelaySettings{
		Providers: append([]string(nil), n.Providers...),
		Ownership: own,
	}
	if out.Location, err = locationConstraint(join(field, "location"), n.Location); err != nil {
		return vpn.NormalRelaySettings{}, err
	}
	if n.TunnelType != nil {
		tt, err := enum(join(field, "tunnel_type"), tunnelTypes, *n.TunnelType)
		if err != nil {
			return vpn.NormalRelaySettings{}, err
		}
		out.TunnelProtocol = vpn.Only(tt)
	}
	if wg := n.WireguardConstraints; wg != nil {
		out.WireGuard.Port = uint32Constraint(wg.Port)
		out.WireGuard.UseMultihop = wg.UseMultihop
		if wg.IpVersion != nil {
			v, err := enum(join(field, "wireguard_constraints.ip_version"), ipVersions, *wg.IpVersion)
			if err != nil {
				return vpn.NormalRelaySettings{}, err
			}
			out.WireGuard.IPVersion = vpn.Only(v)
		}
		if out.WireGuard.EntryLocation, err = locationConstraint(join(field, "wireguard_constraints.entry_location"), wg.EntryLocation); err != nil {
			return vpn.NormalRelaySettings{}, err
		}
	}
	if ovpn := n.OpenvpnConstraints; ovpn != nil && ovpn.Port != nil {
		p, err := enum(join(field, "openvpn_constraints.port.protocol"), transportProtocols, ovpn.Port.Protocol)
		if err != nil {
			return vpn.NormalRelaySettings{}, err
		}
		out.OpenVPN.Protocol = vpn.Only(p)
		out.OpenVPN.Port = uint32Constraint(ovpn.Port.Port)
	}
	return out, nil
}

func customRelaySettings(field string, c *pb.CustomRelaySettings) (vpn.CustomRelaySettings, error) {
	if c.Config == nil {
		return vpn.CustomRelaySettings{}, missing(join(field, "config"))
	}
	out := vpn.CustomRelaySettings{Host: c.Host}
	switch {
	case c.Config.Openvpn != nil:
		o := c.Config.Openvpn
		p, err := enum(join(field, "config.openvpn.protocol"), transportProtocols, o.Protocol)
		if err != nil {
			return vpn.CustomRelaySettings{}, err
		}
		out.Config = vpn.OpenVPNConfig{Address: o.Address, Protocol: p, Username: o.Username, Password: o.Password}
	case c.Config.Wireguard != nil:
		w := c.Config.Wireguard
		if w.Tunnel == nil {
			return vpn.CustomRelaySettings{}, missing(join(field, "config.wireguard.tunnel"))
		}
		if w.Peer == nil {
			return vpn.CustomRelaySettings{}, missing(join(field, "config.wireguard.peer"))
		}
		out.Config = vpn.WireGuardConfig{
			PrivateKey:    append([]byte(nil), w.Tunnel.PrivateKey...),
			Addresses:     append([]string(nil), w.Tunnel.Addresses...),
			PeerPublicKey: append([]byte(nil), w.Peer.PublicKey...),
			AllowedIPs:    append([]string(nil), w.Peer.AllowedIps...),
			PeerEndpoint:  w.Peer.Endpoint,
			IPv4Gateway:   w.Ipv4Gateway,
			IPv6Gateway:   cloneString(w.Ipv6Gateway),
		}
	default:
		return vpn.CustomRelaySettings{}, invalid(join(field, "config"), "no config set")
	}
	return out, nil
}

// locationConstraint maps an absent constraint to Any.
func locationConstraint(field string, l *pb.LocationConstraint) (vpn.Constraint[vpn.LocationConstraint], error) {
	if l == nil {
		return vpn.Any[vpn.LocationConstraint](), nil
	}
	switch {
	case l.CustomList != nil:
		id := *l.CustomList
		if err := validateUUID(join(field, "custom_list"), id); err != nil {
			return vpn.Constraint[vpn.LocationConstraint]{}, err
		}
		return vpn.Only(vpn.LocationConstraint{CustomList: id}), nil
	case l.Location != nil:
		return vpn.Only(vpn.LocationConstraint{Geographic: geographicLocation(l.Location)}), nil
	}
	return vpn.Constraint[vpn.LocationConstraint]{}, invalid(field, "no location set")
}

func geographicLocation(g *pb.GeographicLocationConstraint) vpn.GeographicLocation {
	return vpn.GeographicLocation{
		Country:  g.Country,
		City:     derefString(g.City),
		Hostname: derefString(g.Hostname),
	}
}

func uint32Constraint(v *uint32) vpn.Constraint[uint32] {
	if v == nil {
		return vpn.Any[uint32]()
	}
	return vpn.Only(*v)
}

func bridgeSettings(field string, b *pb.BridgeSettings) (vpn.BridgeSettings, error) {
	if b == nil {
		return vpn.BridgeSettings{}, missing(field)
	}
	t, err := enum(join(field, "bridge_type"), bridgeTypes, b.BridgeType)
	if err != nil {
		return vpn.BridgeSettings{}, err
	}
	out := vpn.BridgeSettings{Type: t}
	if n := b.Normal; n != nil {
		own, err := enum(join(field, "normal.ownership"), ownerships, n.Ownership)
		if err != nil {
			return vpn.BridgeSettings{}, err
		}
		loc, err := locationConstraint(join(field, "normal.location"), n.Location)
		if err != nil {
			return vpn.BridgeSettings{}, err
		}
		out.Normal = vpn.BridgeConstraints{Location: loc, Providers: append([]string(nil), n.Providers...), Ownership: own}
	} else if t == vpn.BridgeNormal {
		return vpn.BridgeSettings{}, missing(join(field, "normal"))
	}
	if b.Custom != nil {
		if out.Custom, err = customProxy(join(field, "custom"), b.Custom); err != nil {
			return vpn.BridgeSettings{}, err
		}
	} else if t == vpn.BridgeCustom {
		return vpn.BridgeSettings{}, missing(join(field, "custom"))
	}
	return out, nil
}

func tunnelOptions(field string, t *pb.TunnelOptions) (vpn.TunnelOptions, error) {
	if t == nil {
		return vpn.TunnelOptions{}, missing(field)
	}
	var out vpn.TunnelOptions
	if t.Openvpn != nil {
		out.OpenVPN.Mssfix = cloneUint32(t.Openvpn.Mssfix)
	}
	if wg := t.Wireguard; wg != nil {
		out.WireGuard.MTU = cloneUint32(wg.Mtu)
		qr, err := quantumResistant(join(field, "wireguard.quantum_resistant"), wg.QuantumResistant)
		if err != nil {
			return vpn.TunnelOptions{}, err
		}
		out.WireGuard.QuantumResistant = qr
		if wg.Daita != nil {
			out.WireGuard.Daita = vpn.DaitaSettings{Enabled: wg.Daita.Enabled, DirectOnly: wg.Daita.DirectOnly}
		}
	}
	if t.Generic != nil {
		out.EnableIPv6 = t.Generic.EnableIpv6
	}
	dns, err := dnsOptions(join(field, "dns_options"), t.DnsOptions)
	if err != nil {
		return vpn.TunnelOptions{}, err
	}
	out.DNS = dns
	return out, nil
}

// quantumResistant maps the tri-state: auto is nil, on is true, off is false.
func quantumResistant(field string, q *pb.QuantumResistantState) (*bool, error) {
	if q == nil {
		return nil, missing(field)
	}
	switch q.State {
	case pb.TriState_AUTO:
		return nil, nil
	case pb.TriState_ON:
		v := true
		return &v, nil
	case pb.TriState_OFF:
		v := false
		return &v, nil
	case pb.TriState_UNSPECIFIED:
		return nil, invalid(join(field, "state"), "unset")
	}
	return nil, invalid(join(field, "state"), "unknown value %d", int32(q.State))
}

// QuantumResistantToWire is the inverse of the tri-state mapping.
func QuantumResistantToWire(v *bool) *pb.QuantumResistantState {
	switch {
	case v == nil:
		return &pb.QuantumResistantState{State: pb.TriState_AUTO}
	case *v:
		return &pb.QuantumResistantState{State: pb.TriState_ON}
	default:
		return &pb.QuantumResistantState{State: pb.TriState_OFF}
	}
}

func dnsOptions(field string, d *pb.DnsOptions) (vpn.DNSOptions, error) {
	if d == nil {
		return vpn.DNSOptions{}, missing(field)
	}
	state, err := enum(join(field, "state"), dnsStates, d.State)
	if err != nil {
		return vpn.DNSOptions{}, err
	}
	out := vpn.DNSOptions{State: state}
	if o := d.DefaultOptions; o != nil {
		out.Default = vpn.DefaultDNSOptions{
			BlockAds:          o.BlockAds,
			BlockTrackers:     o.BlockTrackers,
			BlockMalware:      o.BlockMalware,
			BlockAdultContent: o.BlockAdultContent,
			BlockGambling:     o.BlockGambling,
			BlockSocialMedia:  o.BlockSocialMedia,
		}
	}
	if d.CustomOptions != nil {
		out.Custom = append([]string(nil), d.CustomOptions.Addresses...)
	}
	return out, nil
}

func obfuscationSettings(field string, o *pb.ObfuscationSettings) (vpn.ObfuscationSettings, error) {
	if o == nil {
		return vpn.ObfuscationSettings{}, missing(field)
	}
	mode, err := enum(join(field, "selected_obfuscation"), obfuscationModes, o.SelectedObfuscation)
	if err != nil {
		return vpn.ObfuscationSettings{}, err
	}
	out := vpn.ObfuscationSettings{Selected: mode, UDP2TCPPort: vpn.Any[uint32](), ShadowsocksPort: vpn.Any[uint32]()}
	if o.Udp2Tcp != nil {
		out.UDP2TCPPort = uint32Constraint(o.Udp2Tcp.Port)
	}
	if o.Shadowsocks != nil {
		out.ShadowsocksPort = uint32Constraint(o.Shadowsocks.Port)
	}
	return out, nil
}

func customLists(field string, lists []*pb.CustomList) ([]vpn.CustomList, error) {
	out := make([]vpn.CustomList, 0, len(lists))
	for _, l := range lists {
		cl, err := CustomListFromWire(l)
		if err != nil {
			return nil, err
		}
		out = append(out, cl)
	}
	return out, nil
}

// CustomListFromWire converts a custom list.
func CustomListFromWire(l *pb.CustomList) (vpn.CustomList, error) {
	if l == nil {
		return vpn.CustomList{}, missing("custom_list")
	}
	if err := validateUUID("custom_list.id", l.Id); err != nil {
		return vpn.CustomList{}, err
	}
	out := vpn.CustomList{ID: l.Id, Name: l.Name, Locations: make([]vpn.GeographicLocation, 0, len(l.Locations))}
	for _, g := range l.Locations {
		if g == nil {
			return vpn.CustomList{}, missing("custom_list.locations")
		}
		out.Locations = append(out.Locations, geographicLocation(g))
	}
	return out, nil
}

// Domain to wire.

// RelaySettingsToWire converts relay settings for SetRelaySettings.
func RelaySettingsToWire(r vpn.RelaySettings) (*pb.RelaySettings, error) {
	switch r := r.(type) {
	case vpn.NormalRelaySettings:
		n, err := normalRelaySettingsToWire(r)
		if err != nil {
			return nil, err
		}
		return &pb.RelaySettings{Normal: n}, nil
	case vpn.CustomRelaySettings:
		c, err := connectionConfigToWire(r.Config)
		if err != nil {
			return nil, err
		}
		return &pb.RelaySettings{Custom: &pb.CustomRelaySettings{Host: r.Host, Config: c}}, nil
	case nil:
		return nil, invalidInput("relay_settings", "missing")
	}
	return nil, invalidInput("relay_settings", "unsupported type %T", r)
}

func normalRelaySettingsToWire(n vpn.NormalRelaySettings) (*pb.NormalRelaySettings, error) {
	own, err := toWire("relay_settings.ownership", ownershipsToWire, n.Ownership)
	if err != nil {
		return nil, err
	}
	out := &pb.NormalRelaySettings{
		Location:  locationConstraintToWire(n.Location),
		Providers: append([]string(nil), n.Providers...),
		Ownership: own,
		WireguardConstraints: &pb.WireguardConstraints{
			Port:          constraintToPtr(n.WireGuard.Port),
			UseMultihop:   n.WireGuard.UseMultihop,
			EntryLocation: locationConstraintToWire(n.WireGuard.EntryLocation),
		},
		OpenvpnConstraints: &pb.OpenvpnConstraints{},
	}
	if tt, ok := n.TunnelProtocol.Value(); ok {
		w, err := toWire("relay_settings.tunnel_type", tunnelTypesToWire, tt)
		if err != nil {
			return nil, err
		}
		out.TunnelType = &w
	}
	if v, ok := n.WireGuard.IPVersion.Value(); ok {
		w, err := toWire("relay_settings.wireguard_constraints.ip_version", ipVersionsToWire, v)
		if err != nil {
			return nil, err
		}
		out.WireguardConstraints.IpVersion = &w
	}
	if p, ok := n.OpenVPN.Protocol.Value(); ok {
		w, err := toWire("relay_settings.openvpn_constraints.protocol", transportProtocolsToWire, p)
		if err != nil {
			return nil, err
		}
		out.OpenvpnConstraints.Port = &pb.TransportPort{Protocol: w, Port: constraintToPtr(n.OpenVPN.Port)}
	} else if !n.OpenVPN.Port.IsAny() {
		return nil, invalidInput("relay_settings.openvpn_constraints.port", "port requires a protocol")
	}
	return out, nil
}

func connectionConfigToWire(c vpn.ConnectionConfig) (*pb.ConnectionConfig, error) {
	switch c := c.(type) {
	case vpn.OpenVPNConfig:
		p, err := toWire("relay_settings.custom.config.openvpn.protocol", transportProtocolsToWire, c.Protocol)
		if err != nil {
			return nil, err
		}
		return &pb.ConnectionConfig{Openvpn: &pb.OpenvpnConfig{
			Address: c.Address, Protocol: p, Username: c.Username, Password: c.Password,
		}}, nil
	case vpn.WireGuardConfig:
		return &pb.ConnectionConfig{Wireguard: &pb.WireguardConfig{
			Tunnel:      &pb.WireguardTunnelConfig{PrivateKey: c.PrivateKey, Addresses: c.Addresses},
			Peer:        &pb.WireguardPeerConfig{PublicKey: c.PeerPublicKey, AllowedIps: c.AllowedIPs, Endpoint: c.PeerEndpoint},
			Ipv4Gateway: c.IPv4Gateway,
			Ipv6Gateway: cloneString(c.IPv6Gateway),
		}}, nil
	}
	return nil, invalidInput("relay_settings.custom.config", "unsupported type %T", c)
}

func locationConstraintToWire(c vpn.Constraint[vpn.LocationConstraint]) *pb.LocationConstraint {
	l, ok := c.Value()
	if !ok {
		return nil
	}
	if l.IsCustomList() {
		id := l.CustomList
		return &pb.LocationConstraint{CustomList: &id}
	}
	return &pb.LocationConstraint{Location: geographicLocationToWire(l.Geographic)}
}

func geographicLocationToWire(g vpn.GeographicLocation) *pb.GeographicLocationConstraint {
	return &pb.GeographicLocationConstraint{
		Country:  g.Country,
		City:     optString(g.City),
		Hostname: optString(g.Hostname),
	}
}

func constraintToPtr(c vpn.Constraint[uint32]) *uint32 {
	if v, ok := c.Value(); ok {
		return &v
	}
	return nil
}

// BridgeSettingsToWire converts bridge settings for SetBridgeSettings.
func BridgeSettingsToWire(b vpn.BridgeSettings) (*pb.BridgeSettings, error) {
	t, err := toWire("bridge_settings.bridge_type", bridgeTypesToWire, b.Type)
	if err != nil {
		return nil, err
	}
	own := b.Normal.Ownership
	if own == 0 {
		own = vpn.OwnershipAny
	}
	wown, err := toWire("bridge_settings.normal.ownership", ownershipsToWire, own)
	if err != nil {
		return nil, err
	}
	out := &pb.BridgeSettings{
		BridgeType: t,
		Normal: &pb.BridgeConstraints{
			Location:  locationConstraintToWire(b.Normal.Location),
			Providers: append([]string(nil), b.Normal.Providers...),
			Ownership: wown,
		},
	}
	if b.Custom != nil {
		if out.Custom, err = CustomProxyToWire(b.Custom); err != nil {
			return nil, err
		}
	} else if b.Type == vpn.BridgeCustom {
		return nil, invalidInput("bridge_settings.custom", "missing")
	}
	return out, nil
}

// BridgeStateToWire converts the bridge state.
func BridgeStateToWire(s vpn.BridgeState) (*pb.BridgeState, error) {
	w, err := toWire("bridge_state", bridgeStatesToWire, s)
	if err != nil {
		return nil, err
	}
	return &pb.BridgeState{State: w}, nil
}

// ObfuscationSettingsToWire converts obfuscation settings.
func ObfuscationSettingsToWire(o vpn.ObfuscationSettings) (*pb.ObfuscationSettings, error) {
	mode, err := toWire("obfuscation_settings.selected_obfuscation", obfuscationModesToWire, o.Selected)
	if err != nil {
		return nil, err
	}
	return &pb.ObfuscationSettings{
		SelectedObfuscation: mode,
		Udp2Tcp:             &pb.Udp2TcpObfuscationSettings{Port: constraintToPtr(o.UDP2TCPPort)},
		Shadowsocks:         &pb.ShadowsocksSettings{Port: constraintToPtr(o.ShadowsocksPort)},
	}, nil
}

// DNSOptionsToWire converts DNS options.
func DNSOptionsToWire(d vpn.DNSOptions) (*pb.DnsOptions, error) {
	state, err := toWire("dns_options.state", dnsStatesToWire, d.State)
	if err != nil {
		return nil, err
	}
	return &pb.DnsOptions{
		State: state,
		DefaultOptions: &pb.DefaultDnsOptions{
			BlockAds:          d.Default.BlockAds,
			BlockTrackers:     d.Default.BlockTrackers,
			BlockMalware:      d.Default.BlockMalware,
			BlockAdultContent: d.Default.BlockAdultContent,
			BlockGambling:     d.Default.BlockGambling,
			BlockSocialMedia:  d.Default.BlockSocialMedia,
		},
		CustomOptions: &pb.CustomDnsOptions{Addresses: append([]string(nil), d.Custom...)},
	}, nil
}

// CustomListToWire converts a custom list for UpdateCustomList.
func CustomListToWire(l vpn.CustomList) (*pb.CustomList, error) {
	if _, err := parseUUID("custom_list.id", l.ID, invalidInput); err != nil {
		return nil, err
	}
	out := &pb.CustomList{Id: l.ID, Name: l.Name, Locations: make([]*pb.GeographicLocationConstraint, 0, len(l.Locations))}
	for _, g := range l.Locations {
		out.Locations = append(out.Locations, geographicLocationToWire(g))
	}
	return out, nil
}

// NewCustomListToWire converts a custom list that has no id yet for CreateCustomList.
func NewCustomListToWire(name string, locations []vpn.GeographicLocation) (*pb.CustomList, error) {
	if name == "" {
		return nil, invalidInput("custom_list.name", "missing")
	}
	out := &pb.CustomList{Name: name, Locations: make([]*pb.GeographicLocationConstraint, 0, len(locations))}
	for _, g := range locations {
		out.Locations = append(out.Locations, geographicLocationToWire(g))
	}
	return out, nil
}
