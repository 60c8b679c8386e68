package convert

import (
	"github.com/google/uuid"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

func parseUUID(field, s string, fail func(field, format string, args ...any) error) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, fail(field, "missing")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fail(field, "%v", err)
	}
	return id, nil
}

func validateUUID(field, s string) error {
	_, err := parseUUID(field, s, invalid)
	return err
}

// UUIDToWire validates an id supplied by the caller.
func UUIDToWire(id string) (*pb.UUID, error) {
	u, err := parseUUID("id", id, invalidInput)
	if err != nil {
		return nil, err
	}
	return &pb.UUID{Value: u.String()}, nil
}

// UUIDFromWire validates an id returned by the daemon.
func UUIDFromWire(id *pb.UUID) (string, error) {
	if id == nil {
		return "", missing("id")
	}
	u, err := parseUUID("id", id.Value, invalid)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// AccessMethodSettingFromWire converts a stored access method.
func AccessMethodSettingFromWire(s *pb.AccessMethodSetting) (vpn.AccessMethodSetting, error) {
	return accessMethodSetting("access_method_setting", s)
}

func accessMethodSetting(field string, s *pb.AccessMethodSetting) (vpn.AccessMethodSetting, error) {
	if s == nil {
		return vpn.AccessMethodSetting{}, missing(field)
	}
	if s.Id == nil {
		return vpn.AccessMethodSetting{}, missing(join(field, "id"))
	}
	id, err := parseUUID(join(field, "id"), s.Id.Value, invalid)
	if err != nil {
		return vpn.AccessMethodSetting{}, err
	}
	method, err := accessMethod(join(field, "access_method"), s.AccessMethod)
	if err != nil {
		return vpn.AccessMethodSetting{}, err
	}
	return vpn.AccessMethodSetting{ID: id.String(), Name: s.Name, Enabled: s.Enabled, Method: method}, nil
}

func accessMethodSettings(field string, s *pb.ApiAccessMethodSettings) (vpn.AccessMethodSettings, error) {
	if s == nil {
		return vpn.AccessMethodSettings{}, missing(field)
	}
	var (
		out vpn.AccessMethodSettings
		err error
	)
	if out.Direct, err = accessMethodSetting(join(field, "direct"), s.Direct); err != nil {
		return vpn.AccessMethodSettings{}, err
	}
	if out.MullvadBridges, err = accessMethodSetting(join(field, "mullvad_bridges"), s.MullvadBridges); err != nil {
		return vpn.AccessMethodSettings{}, err
	}
	if out.EncryptedDNSProxy, err = accessMethodSetting(join(field, "encrypted_dns_proxy"), s.EncryptedDnsProxy); err != nil {
		return vpn.AccessMethodSettings{}, err
	}
	out.Custom = make([]vpn.AccessMethodSetting, 0, len(s.Custom))
	for _, c := range s.Custom {
		m, err := accessMethodSetting(join(field, "custom"), c)
		if err != nil {
			return vpn.AccessMethodSettings{}, err
		}
		out.Custom = append(out.Custom, m)
	}
	return out, nil
}

func accessMethod(field string, m *pb.AccessMethod) (vpn.AccessMethod, error) {
	if m == nil {
		return nil, missing(field)
	}
	switch {
	case m.Direct != nil:
		return vpn.DirectAccess{}, nil
	case m.Bridges != nil:
		return vpn.BridgesAccess{}, nil
	case m.EncryptedDnsProxy != nil:
		return vpn.EncryptedDNSProxyAccess{}, nil
	case m.Custom != nil:
		return customProxy(join(field, "custom"), m.Custom)
	}
	return nil, invalid(field, "no access method set")
}

func customProxy(field string, p *pb.CustomProxy) (vpn.CustomProxy, error) {
	switch {
	case p.Socks5Local != nil:
		s := p.Socks5Local
		proto, err := enum(join(field, "socks5local.remote_transport_protocol"), transportProtocols, s.RemoteTransportProtocol)
		if err != nil {
			return nil, err
		}
		return vpn.Socks5Local{RemoteIP: s.RemoteIp, RemotePort: s.RemotePort, RemoteProtocol: proto, LocalPort: s.LocalPort}, nil
	case p.Socks5Remote != nil:
		s := p.Socks5Remote
		out := vpn.Socks5Remote{IP: s.Ip, Port: s.Port}
		if s.Auth != nil {
			out.Auth = &vpn.SocksAuth{Username: s.Auth.Username, Password: s.Auth.Password}
		}
		return out, nil
	case p.Shadowsocks != nil:
		s := p.Shadowsocks
		return vpn.Shadowsocks{IP: s.Ip, Port: s.Port, Password: s.Password, Cipher: s.Cipher}, nil
	}
	return nil, invalid(field, "no proxy set")
}

// accessMethodEncoder builds the wire form of an access method.
type accessMethodEncoder struct {
	out *pb.AccessMethod
	err error
}

func (e *accessMethodEncoder) Direct(vpn.DirectAccess) {
	e.out = &pb.AccessMethod{Direct: &pb.AccessMethodDirect{}}
}

func (e *accessMethodEncoder) Bridges(vpn.BridgesAccess) {
	e.out = &pb.AccessMethod{Bridges: &pb.AccessMethodBridges{}}
}

func (e *accessMethodEncoder) EncryptedDNSProxy(vpn.EncryptedDNSProxyAccess) {
	e.out = &pb.AccessMethod{EncryptedDnsProxy: &pb.AccessMethodEncryptedDnsProxy{}}
}

func (e *accessMethodEncoder) Socks5Local(s vpn.Socks5Local) {
	proto, err := toWire("access_method.custom.socks5local.remote_transport_protocol", transportProtocolsToWire, s.RemoteProtocol)
	if err != nil {
		e.err = err
		return
	}
	e.out = &pb.AccessMethod{Custom: &pb.CustomProxy{Socks5Local: &pb.Socks5Local{
		RemoteIp:                s.RemoteIP,
		RemotePort:              s.RemotePort,
		RemoteTransportProtocol: proto,
		LocalPort:               s.LocalPort,
	}}}
}

func (e *accessMethodEncoder) Socks5Remote(s vpn.Socks5Remote) {
	r := &pb.Socks5Remote{Ip: s.IP, Port: s.Port}
	if s.Auth != nil {
		r.Auth = &pb.SocksAuth{Username: s.Auth.Username, Password: s.Auth.Password}
	}
	e.out = &pb.AccessMethod{Custom: &pb.CustomProxy{Socks5Remote: r}}
}

func (e *accessMethodEncoder) Shadowsocks(s vpn.Shadowsocks) {
	e.out = &pb.AccessMethod{Custom: &pb.CustomProxy{Shadowsocks: &pb.Shadowsocks{
		Ip: s.IP, Port: s.Port, Password: s.Password, Cipher: s.Cipher,
	}}}
}

// AccessMethodToWire converts an access method.
func AccessMethodToWire(m vpn.AccessMethod) (*pb.AccessMethod, error) {
	if m == nil {
		return nil, invalidInput("access_method", "missing")
	}
	var enc accessMethodEncoder
	m.Accept(&enc)
	if enc.err != nil {
		return nil, enc.err
	}
	return enc.out, nil
}

// CustomProxyToWire converts a custom proxy.
func CustomProxyToWire(p vpn.CustomProxy) (*pb.CustomProxy, error) {
	if p == nil {
		return nil, invalidInput("custom_proxy", "missing")
	}
	m, err := AccessMethodToWire(p)
	if err != nil {
		return nil, err
	}
	return m.Custom, nil
}

// AccessMethodSettingToWire converts a stored access method for UpdateApiAccessMethod.
func AccessMethodSettingToWire(s vpn.AccessMethodSetting) (*pb.AccessMethodSetting, error) {
	id, err := UUIDToWire(s.ID)
	if err != nil {
		return nil, err
	}
	m, err := AccessMethodToWire(s.Method)
	if err != nil {
		return nil, err
	}
	return &pb.AccessMethodSetting{Id: id, Name: s.Name, Enabled: s.Enabled, AccessMethod: m}, nil
}

// NewAccessMethodSettingToWire converts a new access method for AddApiAccessMethod.
func NewAccessMethodSettingToWire(s vpn.NewAccessMethodSetting) (*pb.NewAccessMethodSetting, error) {
	m, err := AccessMethodToWire(s.Method)
	if err != nil {
		return nil, err
	}
	return &pb.NewAccessMethodSetting{Name: s.Name, Enabled: s.Enabled, AccessMethod: m}, nil
}
