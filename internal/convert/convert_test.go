package convert

import (
	"errors"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	rpcerrors "github.com/gezibash/mullvad-rpc/pkg/errors"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

const (
	testListID   = "6f1c3a8e-3f0e-4c52-9d53-1f5d7a0c2b11"
	testMethodID = "0b7e4f62-8a2d-4e1b-b0c4-5d2f1e9a7c33"
)

func ptr[T any](v T) *T { return &v }

func wireEndpoint() *pb.TunnelEndpoint {
	return &pb.TunnelEndpoint{
		Address:    "185.65.134.1:51820",
		Protocol:   pb.TransportProtocol_UDP,
		TunnelType: pb.TunnelType_WIREGUARD,
	}
}

func wireAccessMethod(id string, m *pb.AccessMethod) *pb.AccessMethodSetting {
	return &pb.AccessMethodSetting{Id: &pb.UUID{Value: id}, Name: "m", Enabled: true, AccessMethod: m}
}

func wireSettings() *pb.Settings {
	return &pb.Settings{
		RelaySettings: &pb.RelaySettings{Normal: &pb.NormalRelaySettings{
			Location:  &pb.LocationConstraint{Location: &pb.GeographicLocationConstraint{Country: "se", City: ptr("got")}},
			Ownership: pb.Ownership_ANY,
		}},
		BridgeSettings: &pb.BridgeSettings{
			BridgeType: pb.BridgeType_NORMAL,
			Normal:     &pb.BridgeConstraints{Ownership: pb.Ownership_MULLVAD_OWNED},
		},
		BridgeState: &pb.BridgeState{State: pb.TriState_AUTO},
		AllowLan:    true,
		TunnelOptions: &pb.TunnelOptions{
			Wireguard:  &pb.WireguardOptions{QuantumResistant: &pb.QuantumResistantState{State: pb.TriState_AUTO}},
			Generic:    &pb.GenericOptions{EnableIpv6: true},
			DnsOptions: &pb.DnsOptions{State: pb.DnsState_DEFAULT, DefaultOptions: &pb.DefaultDnsOptions{BlockAds: true}},
		},
		ObfuscationSettings: &pb.ObfuscationSettings{},
		SplitTunnel:         &pb.SplitTunnelSettings{EnableExclusions: true, AppsList: []string{"/usr/bin/app"}},
		CustomLists: &pb.CustomListSettings{CustomLists: []*pb.CustomList{
			{Id: testListID, Name: "favs", Locations: []*pb.GeographicLocationConstraint{{Country: "se"}}},
		}},
		ApiAccessMethods: &pb.ApiAccessMethodSettings{
			Direct:            wireAccessMethod(testMethodID, &pb.AccessMethod{Direct: &pb.AccessMethodDirect{}}),
			MullvadBridges:    wireAccessMethod(testMethodID, &pb.AccessMethod{Bridges: &pb.AccessMethodBridges{}}),
			EncryptedDnsProxy: wireAccessMethod(testMethodID, &pb.AccessMethod{EncryptedDnsProxy: &pb.AccessMethodEncryptedDnsProxy{}}),
		},
	}
}

func requireInvalidResponse(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, rpcerrors.ErrInvalidResponse) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error %T is not *convert.Error", err)
	}
}

func TestTunnelStateFromWire(t *testing.T) {
	tests := []struct {
		name string
		in   *pb.TunnelState
		want string
	}{
		{"disconnected", &pb.TunnelState{Disconnected: &pb.TunnelStateDisconnected{}}, "disconnected"},
		{"connecting without relay", &pb.TunnelState{Connecting: &pb.TunnelStateConnecting{}}, "connecting"},
		{"connected", &pb.TunnelState{Connected: &pb.TunnelStateConnected{
			RelayInfo: &pb.TunnelStateRelayInfo{TunnelEndpoint: wireEndpoint()},
		}}, "connected"},
		{"disconnecting", &pb.TunnelState{Disconnecting: &pb.TunnelStateDisconnecting{
			AfterDisconnect: pb.AfterDisconnect_RECONNECT,
		}}, "disconnecting"},
		{"error", &pb.TunnelState{Error: &pb.TunnelStateError{ErrorState: &pb.ErrorState{
			Cause: pb.ErrorCause_IS_OFFLINE,
		}}}, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TunnelStateFromWire(tt.in)
			if err != nil {
				t.Fatalf("TunnelStateFromWire: %v", err)
			}
			if got.Name() != tt.want {
				t.Errorf("state = %s, want %s", got.Name(), tt.want)
			}
		})
	}
}

func TestTunnelStateFromWireRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   *pb.TunnelState
	}{
		{"nil", nil},
		{"no variant", &pb.TunnelState{}},
		{"connected without relay info", &pb.TunnelState{Connected: &pb.TunnelStateConnected{}}},
		{"unset after disconnect", &pb.TunnelState{Disconnecting: &pb.TunnelStateDisconnecting{}}},
		{"unknown protocol", &pb.TunnelState{Connected: &pb.TunnelStateConnected{
			RelayInfo: &pb.TunnelStateRelayInfo{TunnelEndpoint: &pb.TunnelEndpoint{
				Protocol: pb.TransportProtocol(42), TunnelType: pb.TunnelType_WIREGUARD,
			}},
		}}},
		{"unknown feature", &pb.TunnelState{Connecting: &pb.TunnelStateConnecting{
			FeatureIndicators: &pb.FeatureIndicators{ActiveFeatures: []pb.FeatureIndicator{0}},
		}}},
		{"mobile-only cause", &pb.TunnelState{Error: &pb.TunnelStateError{ErrorState: &pb.ErrorState{
			Cause: pb.ErrorCause_NOT_PREPARED,
		}}}},
		{"auth failed without detail", &pb.TunnelState{Error: &pb.TunnelStateError{ErrorState: &pb.ErrorState{
			Cause: pb.ErrorCause_AUTH_FAILED,
		}}}},
		{"policy error missing", &pb.TunnelState{Error: &pb.TunnelStateError{ErrorState: &pb.ErrorState{
			Cause: pb.ErrorCause_SET_FIREWALL_POLICY_ERROR,
		}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TunnelStateFromWire(tt.in)
			requireInvalidResponse(t, err)
		})
	}
}

func TestErrorStateDetails(t *testing.T) {
	got, err := TunnelStateFromWire(&pb.TunnelState{Error: &pb.TunnelStateError{ErrorState: &pb.ErrorState{
		Cause:       pb.ErrorCause_SET_FIREWALL_POLICY_ERROR,
		PolicyError: &pb.FirewallPolicyError{Type: pb.FirewallPolicyErrorType_LOCKED, LockPid: 42, LockName: ptr("wfp")},
	}}})
	if err != nil {
		t.Fatalf("TunnelStateFromWire: %v", err)
	}
	es := got.(vpn.TunnelError).State
	if es.PolicyError == nil || es.PolicyError.Type != vpn.FirewallLocked {
		t.Fatalf("policy error = %+v", es.PolicyError)
	}
	if es.PolicyError.LockPID != 42 || es.PolicyError.LockName != "wfp" {
		t.Errorf("lock holder = %d %q", es.PolicyError.LockPID, es.PolicyError.LockName)
	}
	if !es.IsBlocking() {
		t.Error("error state without blocking error should block")
	}
}

func TestLocationOptionalFields(t *testing.T) {
	got, err := TunnelStateFromWire(&pb.TunnelState{Disconnected: &pb.TunnelStateDisconnected{
		DisconnectedLocation: &pb.GeoIpLocation{Country: "Sweden", Ipv4: ptr("10.0.0.1")},
	}})
	if err != nil {
		t.Fatalf("TunnelStateFromWire: %v", err)
	}
	loc := got.(vpn.TunnelDisconnected).Location
	if loc == nil {
		t.Fatal("location dropped")
	}
	if loc.IPv4 == nil || *loc.IPv4 != "10.0.0.1" {
		t.Errorf("ipv4 = %v", loc.IPv4)
	}
	if loc.City != nil || loc.IPv6 != nil || loc.Hostname != nil {
		t.Error("absent optional fields must stay nil")
	}
}

func TestSettingsFromWire(t *testing.T) {
	s, err := SettingsFromWire(wireSettings())
	if err != nil {
		t.Fatalf("SettingsFromWire: %v", err)
	}
	if !s.AllowLAN || !s.Tunnel.EnableIPv6 {
		t.Error("flags not carried over")
	}
	normal, ok := s.Relay.(vpn.NormalRelaySettings)
	if !ok {
		t.Fatalf("relay settings = %T", s.Relay)
	}
	loc, ok := normal.Location.Value()
	if !ok || loc.Geographic.Country != "se" || loc.Geographic.City != "got" {
		t.Errorf("location = %v", normal.Location)
	}
	if !normal.TunnelProtocol.IsAny() {
		t.Error("absent tunnel type should be any")
	}
	if s.Tunnel.WireGuard.QuantumResistant != nil {
		t.Error("auto quantum resistance should be nil")
	}
	if s.Obfuscation.Selected != vpn.ObfuscationAuto {
		t.Errorf("unset obfuscation = %v, want auto", s.Obfuscation.Selected)
	}
	if s.BridgeState != vpn.BridgeAuto {
		t.Errorf("bridge state = %v", s.BridgeState)
	}
	if len(s.CustomLists) != 1 || s.CustomLists[0].ID != testListID {
		t.Errorf("custom lists = %+v", s.CustomLists)
	}
	if len(s.AccessMethods.All()) != 3 {
		t.Errorf("access methods = %d", len(s.AccessMethods.All()))
	}
}

func TestSettingsFromWireRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*pb.Settings)
	}{
		{"no relay settings variant", func(s *pb.Settings) { s.RelaySettings = &pb.RelaySettings{} }},
		{"missing tunnel options", func(s *pb.Settings) { s.TunnelOptions = nil }},
		{"unset ownership", func(s *pb.Settings) { s.RelaySettings.Normal.Ownership = pb.Ownership_UNSPECIFIED }},
		{"unset bridge state", func(s *pb.Settings) { s.BridgeState.State = pb.TriState_UNSPECIFIED }},
		{"unset quantum state", func(s *pb.Settings) {
			s.TunnelOptions.Wireguard.QuantumResistant.State = pb.TriState_UNSPECIFIED
		}},
		{"bad custom list id", func(s *pb.Settings) { s.CustomLists.CustomLists[0].Id = "not-a-uuid" }},
		{"empty location constraint", func(s *pb.Settings) {
			s.RelaySettings.Normal.Location = &pb.LocationConstraint{}
		}},
		{"access method without variant", func(s *pb.Settings) {
			s.ApiAccessMethods.Direct.AccessMethod = &pb.AccessMethod{}
		}},
		{"custom bridge without proxy", func(s *pb.Settings) {
			s.BridgeSettings = &pb.BridgeSettings{BridgeType: pb.BridgeType_CUSTOM, Normal: s.BridgeSettings.Normal}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := wireSettings()
			tt.mutate(s)
			_, err := SettingsFromWire(s)
			requireInvalidResponse(t, err)
		})
	}
}

func TestQuantumResistantTriState(t *testing.T) {
	tests := []struct {
		name string
		in   *bool
		wire pb.TriState
	}{
		{"auto", nil, pb.TriState_AUTO},
		{"on", ptr(true), pb.TriState_ON},
		{"off", ptr(false), pb.TriState_OFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := QuantumResistantToWire(tt.in)
			if w.State != tt.wire {
				t.Fatalf("wire state = %v, want %v", w.State, tt.wire)
			}
			back, err := quantumResistant("q", w)
			if err != nil {
				t.Fatalf("quantumResistant: %v", err)
			}
			switch {
			case tt.in == nil && back != nil:
				t.Errorf("auto became %v", *back)
			case tt.in != nil && (back == nil || *back != *tt.in):
				t.Errorf("got %v, want %v", back, *tt.in)
			}
		})
	}
}

func TestRelaySettingsToWire(t *testing.T) {
	in := vpn.NormalRelaySettings{
		Location:       vpn.Only(vpn.LocationConstraint{CustomList: testListID}),
		TunnelProtocol: vpn.Only(vpn.WireGuard),
		Ownership:      vpn.OwnershipRented,
		WireGuard: vpn.WireGuardConstraints{
			Port:        vpn.Only(uint32(51820)),
			IPVersion:   vpn.Only(vpn.IPv6),
			UseMultihop: true,
		},
	}
	w, err := RelaySettingsToWire(in)
	if err != nil {
		t.Fatalf("RelaySettingsToWire: %v", err)
	}
	if w.Normal == nil || w.Normal.Location == nil || w.Normal.Location.CustomList == nil {
		t.Fatalf("location not encoded: %+v", w.Normal)
	}
	if *w.Normal.TunnelType != pb.TunnelType_WIREGUARD || w.Normal.Ownership != pb.Ownership_RENTED {
		t.Errorf("normal = %+v", w.Normal)
	}
	if *w.Normal.WireguardConstraints.Port != 51820 || *w.Normal.WireguardConstraints.IpVersion != pb.IpVersion_V6 {
		t.Errorf("wireguard = %+v", w.Normal.WireguardConstraints)
	}
	if w.Normal.OpenvpnConstraints.Port != nil {
		t.Error("any openvpn constraint should not be encoded")
	}

	back, err := relaySettings("relay_settings", w)
	if err != nil {
		t.Fatalf("relaySettings: %v", err)
	}
	got := back.(vpn.NormalRelaySettings)
	if l, _ := got.Location.Value(); l.CustomList != testListID {
		t.Errorf("custom list = %q", l.CustomList)
	}
	if !got.WireGuard.EntryLocation.IsAny() {
		t.Error("entry location should be any")
	}
}

func TestRelaySettingsToWireRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   vpn.RelaySettings
	}{
		{"nil", nil},
		{"zero ownership", vpn.NormalRelaySettings{}},
		{"openvpn port without protocol", vpn.NormalRelaySettings{
			Ownership: vpn.OwnershipAny,
			OpenVPN:   vpn.OpenVPNConstraints{Port: vpn.Only(uint32(1194))},
		}},
		{"custom without config", vpn.CustomRelaySettings{Host: "example.net"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RelaySettingsToWire(tt.in)
			if !errors.Is(err, rpcerrors.ErrInvalidInput) {
				t.Fatalf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAccessMethodToWire(t *testing.T) {
	tests := []struct {
		name  string
		in    vpn.AccessMethod
		check func(*pb.AccessMethod) bool
	}{
		{"direct", vpn.DirectAccess{}, func(m *pb.AccessMethod) bool { return m.Direct != nil }},
		{"bridges", vpn.BridgesAccess{}, func(m *pb.AccessMethod) bool { return m.Bridges != nil }},
		{"encrypted dns", vpn.EncryptedDNSProxyAccess{}, func(m *pb.AccessMethod) bool { return m.EncryptedDnsProxy != nil }},
		{"socks5 local", vpn.Socks5Local{RemoteIP: "10.0.0.1", RemotePort: 1080, RemoteProtocol: vpn.TCP, LocalPort: 1081},
			func(m *pb.AccessMethod) bool {
				return m.Custom != nil && m.Custom.Socks5Local != nil &&
					m.Custom.Socks5Local.RemoteTransportProtocol == pb.TransportProtocol_TCP
			}},
		{"socks5 remote", vpn.Socks5Remote{IP: "10.0.0.2", Port: 1080, Auth: &vpn.SocksAuth{Username: "u", Password: "p"}},
			func(m *pb.AccessMethod) bool {
				return m.Custom != nil && m.Custom.Socks5Remote != nil && m.Custom.Socks5Remote.Auth.Username == "u"
			}},
		{"shadowsocks", vpn.Shadowsocks{IP: "10.0.0.3", Port: 443, Cipher: "aes-256-gcm"},
			func(m *pb.AccessMethod) bool { return m.Custom != nil && m.Custom.Shadowsocks != nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := AccessMethodToWire(tt.in)
			if err != nil {
				t.Fatalf("AccessMethodToWire: %v", err)
			}
			if !tt.check(w) {
				t.Fatalf("unexpected encoding %+v", w)
			}
			back, err := accessMethod("access_method", w)
			if err != nil {
				t.Fatalf("accessMethod: %v", err)
			}
			if back == nil {
				t.Fatal("decoded nil method")
			}
		})
	}

	if _, err := AccessMethodToWire(vpn.Socks5Local{}); !errors.Is(err, rpcerrors.ErrInvalidInput) {
		t.Errorf("zero protocol: error = %v, want ErrInvalidInput", err)
	}
}

func TestAccessMethodSettingIDs(t *testing.T) {
	if _, err := AccessMethodSettingToWire(vpn.AccessMethodSetting{ID: "nope", Method: vpn.DirectAccess{}}); !errors.Is(err, rpcerrors.ErrInvalidInput) {
		t.Errorf("bad id: error = %v, want ErrInvalidInput", err)
	}
	_, err := AccessMethodSettingFromWire(wireAccessMethod("", &pb.AccessMethod{Direct: &pb.AccessMethodDirect{}}))
	requireInvalidResponse(t, err)

	id, err := UUIDFromWire(&pb.UUID{Value: "0B7E4F62-8A2D-4E1B-B0C4-5D2F1E9A7C33"})
	if err != nil {
		t.Fatalf("UUIDFromWire: %v", err)
	}
	if id != testMethodID {
		t.Errorf("id = %s, want canonical form %s", id, testMethodID)
	}
}

func TestRelayListFromWire(t *testing.T) {
	l := &pb.RelayList{
		Countries: []*pb.RelayListCountry{{
			Name: "Sweden", Code: "se",
			Cities: []*pb.RelayListCity{{
				Name: "Gothenburg", Code: "got",
				Relays: []*pb.Relay{
					{Hostname: "se-got-wg-001", Active: true, EndpointType: pb.RelayType_WIREGUARD},
					{Hostname: "se-got-br-001", EndpointType: pb.RelayType_BRIDGE},
				},
			}},
		}},
		EndpointData: &pb.WireguardEndpointData{
			PortRanges:   []*pb.PortRange{{First: 53, Last: 53}, {First: 4000, Last: 33433}},
			Udp2TcpPorts: []uint32{80, 5001},
		},
	}
	got, err := RelayListFromWire(l)
	if err != nil {
		t.Fatalf("RelayListFromWire: %v", err)
	}
	if got.RelayCount() != 2 {
		t.Errorf("relay count = %d", got.RelayCount())
	}
	if got.WireGuard.PortRanges[1] != [2]uint32{4000, 33433} {
		t.Errorf("port ranges = %v", got.WireGuard.PortRanges)
	}

	l.EndpointData.PortRanges[0] = &pb.PortRange{First: 10, Last: 1}
	_, err = RelayListFromWire(l)
	requireInvalidResponse(t, err)

	l.EndpointData.PortRanges[0] = &pb.PortRange{First: 1, Last: 10}
	l.Countries[0].Cities[0].Relays[0].EndpointType = pb.RelayType_UNSPECIFIED
	_, err = RelayListFromWire(l)
	requireInvalidResponse(t, err)
}

func TestDeviceState(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	got, err := DeviceStateFromWire(&pb.DeviceState{
		State: pb.DeviceStateKind_LOGGED_IN,
		Device: &pb.AccountAndDevice{
			AccountNumber: "1234123412341234",
			Device:        &pb.Device{Id: "d1", Name: "happy seal", Created: timestamppb.New(created)},
		},
	})
	if err != nil {
		t.Fatalf("DeviceStateFromWire: %v", err)
	}
	if got.Kind != vpn.DeviceLoggedIn || got.AccountNumber != "1234123412341234" {
		t.Errorf("state = %+v", got)
	}
	if got.Device == nil || !got.Device.Created.Equal(created) {
		t.Errorf("device = %+v", got.Device)
	}

	out, err := DeviceStateFromWire(&pb.DeviceState{State: pb.DeviceStateKind_REVOKED})
	if err != nil || out.Kind != vpn.DeviceRevoked {
		t.Errorf("revoked = %+v, %v", out, err)
	}

	_, err = DeviceStateFromWire(&pb.DeviceState{State: pb.DeviceStateKind_LOGGED_IN})
	requireInvalidResponse(t, err)

	_, err = DeviceFromWire(&pb.Device{Id: "d1", Created: &timestamppb.Timestamp{Nanos: -1}})
	requireInvalidResponse(t, err)
}

func TestDaemonEventFromWire(t *testing.T) {
	tests := []struct {
		name string
		in   *pb.DaemonEvent
		kind string
	}{
		{"tunnel state", &pb.DaemonEvent{TunnelState: &pb.TunnelState{Disconnected: &pb.TunnelStateDisconnected{}}}, "tunnel_state"},
		{"settings", &pb.DaemonEvent{Settings: wireSettings()}, "settings"},
		{"version", &pb.DaemonEvent{VersionInfo: &pb.AppVersionInfo{Supported: true}}, "version_info"},
		{"device", &pb.DaemonEvent{Device: &pb.DeviceEvent{
			Cause:    pb.DeviceEventCause_LOGGED_OUT,
			NewState: &pb.DeviceState{State: pb.DeviceStateKind_LOGGED_OUT},
		}}, "device"},
		{"device removal", &pb.DaemonEvent{RemoveDevice: &pb.RemoveDeviceEvent{AccountNumber: "1"}}, "device_removal"},
		{"new access method", &pb.DaemonEvent{NewAccessMethod: wireAccessMethod(testMethodID,
			&pb.AccessMethod{Custom: &pb.CustomProxy{Shadowsocks: &pb.Shadowsocks{Ip: "1.2.3.4"}}})}, "new_access_method"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaemonEventFromWire(tt.in)
			if err != nil {
				t.Fatalf("DaemonEventFromWire: %v", err)
			}
			if got.Kind() != tt.kind {
				t.Errorf("kind = %s, want %s", got.Kind(), tt.kind)
			}
		})
	}

	_, err := DaemonEventFromWire(&pb.DaemonEvent{})
	requireInvalidResponse(t, err)
}

func TestAppUpgradeEventFromWire(t *testing.T) {
	got, err := AppUpgradeEventFromWire(&pb.AppUpgradeEvent{DownloadProgress: &pb.AppUpgradeDownloadProgress{
		Server: "cdn", Progress: 40, TimeLeft: durationpb.New(90 * time.Second),
	}})
	if err != nil {
		t.Fatalf("AppUpgradeEventFromWire: %v", err)
	}
	p := got.(vpn.UpgradeDownloadProgress)
	if p.TimeLeft == nil || *p.TimeLeft != 90*time.Second {
		t.Errorf("time left = %v", p.TimeLeft)
	}

	got, err = AppUpgradeEventFromWire(&pb.AppUpgradeEvent{Error: &pb.AppUpgradeError{Error: pb.AppUpgradeErrorKind_DOWNLOAD_FAILED}})
	if err != nil {
		t.Fatalf("AppUpgradeEventFromWire(error): %v", err)
	}
	if e, ok := got.(vpn.UpgradeError); !ok || e.Reason != vpn.UpgradeDownloadFailed || e.Kind() != "error" {
		t.Errorf("upgrade error = %#v", got)
	}

	for name, in := range map[string]*pb.AppUpgradeEvent{
		"no variant":     {},
		"progress > 100": {DownloadProgress: &pb.AppUpgradeDownloadProgress{Progress: 101}},
		"unset error":    {Error: &pb.AppUpgradeError{}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := AppUpgradeEventFromWire(in)
			requireInvalidResponse(t, err)
		})
	}
}
