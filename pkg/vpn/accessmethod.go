package vpn

// AccessMethod is a way of reaching the Mullvad API.
type AccessMethod interface {
	Accept(v AccessMethodVisitor)
}

// CustomProxy is a user defined proxy. Every CustomProxy is also an AccessMethod.
type CustomProxy interface {
	AccessMethod
	isCustomProxy()
}

// AccessMethodVisitor handles every access method variant.
type AccessMethodVisitor interface {
	Direct(DirectAccess)
	Bridges(BridgesAccess)
	EncryptedDNSProxy(EncryptedDNSProxyAccess)
	Socks5Local(Socks5Local)
	Socks5Remote(Socks5Remote)
	Shadowsocks(Shadowsocks)
}

type DirectAccess struct{}

type BridgesAccess struct{}

type EncryptedDNSProxyAccess struct{}

// Socks5Local forwards through a SOCKS5 server on localhost.
type Socks5Local struct {
	RemoteIP       string
	RemotePort     uint32
	RemoteProtocol TransportProtocol
	LocalPort      uint32
}

type Socks5Remote struct {
	IP   string
	Port uint32
	// Auth is nil for unauthenticated proxies.
	Auth *SocksAuth
}

type SocksAuth struct {
	Username string
	Password string
}

type Shadowsocks struct {
	IP       string
	Port     uint32
	Password string
	Cipher   string
}

func (m DirectAccess) Accept(v AccessMethodVisitor)            { v.Direct(m) }
func (m BridgesAccess) Accept(v AccessMethodVisitor)           { v.Bridges(m) }
func (m EncryptedDNSProxyAccess) Accept(v AccessMethodVisitor) { v.EncryptedDNSProxy(m) }
func (m Socks5Local) Accept(v AccessMethodVisitor)             { v.Socks5Local(m) }
func (m Socks5Remote) Accept(v AccessMethodVisitor)            { v.Socks5Remote(m) }
func (m Shadowsocks) Accept(v AccessMethodVisitor)             { v.Shadowsocks(m) }

func (Socks5Local) isCustomProxy()  {}
func (Socks5Remote) isCustomProxy() {}
func (Shadowsocks) isCustomProxy()  {}

// AccessMethodSetting is a stored access method.
type AccessMethodSetting struct {
	ID      string
	Name    string
	Enabled bool
	Method  AccessMethod
}

// NewAccessMethodSetting is an access method that has not been assigned an id.
type NewAccessMethodSetting struct {
	Name    string
	Enabled bool
	Method  AccessMethod
}

type AccessMethodSettings struct {
	Direct            AccessMethodSetting
	MullvadBridges    AccessMethodSetting
	EncryptedDNSProxy AccessMethodSetting
	Custom            []AccessMethodSetting
}

// All returns the built-in methods followed by the custom ones.
func (s AccessMethodSettings) All() []AccessMethodSetting {
	out := make([]AccessMethodSetting, 0, 3+len(s.Custom))
	out = append(out, s.Direct, s.MullvadBridges, s.EncryptedDNSProxy)
	return append(out, s.Custom...)
}
