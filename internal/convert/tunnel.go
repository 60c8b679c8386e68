package convert

import (
	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

var transportProtocols = map[pb.TransportProtocol]vpn.TransportProtocol{
	pb.TransportProtocol_UDP: vpn.UDP,
	pb.TransportProtocol_TCP: vpn.TCP,
}

var tunnelTypes = map[pb.TunnelType]vpn.TunnelType{
	pb.TunnelType_OPENVPN:   vpn.OpenVPN,
	pb.TunnelType_WIREGUARD: vpn.WireGuard,
}

var proxyTypes = map[pb.ProxyType]vpn.ProxyType{
	pb.ProxyType_SHADOWSOCKS: vpn.ProxyShadowsocks,
	pb.ProxyType_CUSTOM:      vpn.ProxyCustom,
}

var obfuscationTypes = map[pb.ObfuscationType]vpn.ObfuscationType{
	pb.ObfuscationType_UDP2TCP:     vpn.ObfuscationUDP2TCP,
	pb.ObfuscationType_SHADOWSOCKS: vpn.ObfuscationShadowsocks,
}

var afterDisconnects = map[pb.AfterDisconnect]vpn.AfterDisconnect{
	pb.AfterDisconnect_NOTHING:   vpn.AfterDisconnectNothing,
	pb.AfterDisconnect_BLOCK:     vpn.AfterDisconnectBlock,
	pb.AfterDisconnect_RECONNECT: vpn.AfterDisconnectReconnect,
}

// Mobile-only causes are rejected as unknown.
var errorCauses = map[pb.ErrorCause]vpn.ErrorCause{
	pb.ErrorCause_AUTH_FAILED:                vpn.CauseAuthFailed,
	pb.ErrorCause_IPV6_UNAVAILABLE:           vpn.CauseIPv6Unavailable,
	pb.ErrorCause_SET_FIREWALL_POLICY_ERROR:  vpn.CauseSetFirewallPolicyError,
	pb.ErrorCause_SET_DNS_ERROR:              vpn.CauseSetDNSError,
	pb.ErrorCause_START_TUNNEL_ERROR:         vpn.CauseStartTunnelError,
	pb.ErrorCause_CREATE_TUNNEL_DEVICE:       vpn.CauseCreateTunnelDevice,
	pb.ErrorCause_TUNNEL_PARAMETER_ERROR:     vpn.CauseTunnelParameterError,
	pb.ErrorCause_IS_OFFLINE:                 vpn.CauseIsOffline,
	pb.ErrorCause_SPLIT_TUNNEL_ERROR:         vpn.CauseSplitTunnelError,
	pb.ErrorCause_NEED_FULL_DISK_PERMISSIONS: vpn.CauseNeedFullDiskPermissions,
}

var authFailedErrors = map[pb.AuthFailedError]vpn.AuthFailedError{
	pb.AuthFailedError_UNKNOWN:              vpn.AuthFailedUnknown,
	pb.AuthFailedError_INVALID_ACCOUNT:      vpn.AuthFailedInvalidAccount,
	pb.AuthFailedError_EXPIRED_ACCOUNT:      vpn.AuthFailedExpiredAccount,
	pb.AuthFailedError_TOO_MANY_CONNECTIONS: vpn.AuthFailedTooManyConnections,
}

var parameterErrors = map[pb.GenerationError]vpn.TunnelParameterError{
	pb.GenerationError_NO_MATCHING_RELAY:                   vpn.ParameterNoMatchingRelay,
	pb.GenerationError_NO_MATCHING_BRIDGE_RELAY:            vpn.ParameterNoMatchingBridgeRelay,
	pb.GenerationError_NO_WIREGUARD_KEY:                    vpn.ParameterNoWireguardKey,
	pb.GenerationError_CUSTOM_TUNNEL_HOST_RESOLUTION_ERROR: vpn.ParameterCustomTunnelHostResolution,
	pb.GenerationError_NETWORK_IPV4_UNAVAILABLE:            vpn.ParameterNetworkIPv4Unavailable,
	pb.GenerationError_NETWORK_IPV6_UNAVAILABLE:            vpn.ParameterNetworkIPv6Unavailable,
}

var firewallErrorTypes = map[pb.FirewallPolicyErrorType]vpn.FirewallPolicyErrorType{
	pb.FirewallPolicyErrorType_GENERIC: vpn.FirewallGeneric,
	pb.FirewallPolicyErrorType_LOCKED:  vpn.FirewallLocked,
}

var featureIndicators = map[pb.FeatureIndicator]vpn.FeatureIndicator{
	pb.FeatureIndicator_QUANTUM_RESISTANCE:   vpn.FeatureQuantumResistance,
	pb.FeatureIndicator_MULTIHOP:             vpn.FeatureMultihop,
	pb.FeatureIndicator_BRIDGE_MODE:          vpn.FeatureBridgeMode,
	pb.FeatureIndicator_SPLIT_TUNNELING:      vpn.FeatureSplitTunneling,
	pb.FeatureIndicator_LOCKDOWN_MODE:        vpn.FeatureLockdownMode,
	pb.FeatureIndicator_UDP_2_TCP:            vpn.FeatureUDP2TCP,
	pb.FeatureIndicator_LAN_SHARING:          vpn.FeatureLANSharing,
	pb.FeatureIndicator_DNS_CONTENT_BLOCKERS: vpn.FeatureDNSContentBlockers,
	pb.FeatureIndicator_CUSTOM_DNS:           vpn.FeatureCustomDNS,
	pb.FeatureIndicator_SERVER_IP_OVERRIDE:   vpn.FeatureServerIPOverride,
	pb.FeatureIndicator_CUSTOM_MTU:           vpn.FeatureCustomMTU,
	pb.FeatureIndicator_CUSTOM_MSS_FIX:       vpn.FeatureCustomMSSFix,
	pb.FeatureIndicator_DAITA:                vpn.FeatureDaita,
	pb.FeatureIndicator_SHADOWSOCKS:          vpn.FeatureShadowsocks,
}

// TunnelStateFromWire converts a tunnel state.
func TunnelStateFromWire(s *pb.TunnelState) (vpn.TunnelState, error) {
	return tunnelState("tunnel_state", s)
}

func tunnelState(field string, s *pb.TunnelState) (vpn.TunnelState, error) {
	if s == nil {
		return nil, missing(field)
	}
	switch {
	case s.Disconnected != nil:
		var loc *vpn.Location
		if s.Disconnected.DisconnectedLocation != nil {
			l := location(s.Disconnected.DisconnectedLocation)
			loc = &l
		}
		return vpn.TunnelDisconnected{Location: loc, LockedDown: s.Disconnected.LockedDown}, nil

	case s.Connecting != nil:
		field = join(field, "connecting")
		feats, err := features(join(field, "feature_indicators"), s.Connecting.FeatureIndicators)
		if err != nil {
			return nil, err
		}
		state := vpn.TunnelConnecting{Features: feats}
		if s.Connecting.RelayInfo != nil {
			info, err := relayInfo(join(field, "relay_info"), s.Connecting.RelayInfo)
			if err != nil {
				return nil, err
			}
			state.Details = &info
		}
		return state, nil

	case s.Connected != nil:
		field = join(field, "connected")
		info, err := relayInfo(join(field, "relay_info"), s.Connected.RelayInfo)
		if err != nil {
			return nil, err
		}
		feats, err := features(join(field, "feature_indicators"), s.Connected.FeatureIndicators)
		if err != nil {
			return nil, err
		}
		return vpn.TunnelConnected{Details: info, Features: feats}, nil

	case s.Disconnecting != nil:
		after, err := enum(join(field, "disconnecting.after_disconnect"), afterDisconnects, s.Disconnecting.AfterDisconnect)
		if err != nil {
			return nil, err
		}
		return vpn.TunnelDisconnecting{After: after}, nil

	case s.Error != nil:
		es, err := errorState(join(field, "error.error_state"), s.Error.ErrorState)
		if err != nil {
			return nil, err
		}
		return vpn.TunnelError{State: es}, nil
	}
	return nil, invalid(field, "no state set")
}

func features(field string, f *pb.FeatureIndicators) ([]vpn.FeatureIndicator, error) {
	if f == nil {
		return nil, nil
	}
	out := make([]vpn.FeatureIndicator, 0, len(f.ActiveFeatures))
	for _, w := range f.ActiveFeatures {
		d, err := enum(field, featureIndicators, w)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func errorState(field string, e *pb.ErrorState) (vpn.ErrorState, error) {
	if e == nil {
		return vpn.ErrorState{}, missing(field)
	}
	cause, err := enum(join(field, "cause"), errorCauses, e.Cause)
	if err != nil {
		return vpn.ErrorState{}, err
	}
	out := vpn.ErrorState{Cause: cause}
	if e.BlockingError != nil {
		be, err := firewallError(join(field, "blocking_error"), e.BlockingError)
		if err != nil {
			return vpn.ErrorState{}, err
		}
		out.BlockingError = &be
	}
	switch cause {
	case vpn.CauseAuthFailed:
		out.AuthFailed, err = enum(join(field, "auth_failed_error"), authFailedErrors, e.AuthFailedError)
	case vpn.CauseTunnelParameterError:
		out.ParameterError, err = enum(join(field, "parameter_error"), parameterErrors, e.ParameterError)
	case vpn.CauseSetFirewallPolicyError:
		if e.PolicyError == nil {
			return vpn.ErrorState{}, missing(join(field, "policy_error"))
		}
		var pe vpn.FirewallPolicyError
		pe, err = firewallError(join(field, "policy_error"), e.PolicyError)
		out.PolicyError = &pe
	}
	if err != nil {
		return vpn.ErrorState{}, err
	}
	return out, nil
}

func firewallError(field string, e *pb.FirewallPolicyError) (vpn.FirewallPolicyError, error) {
	t, err := enum(join(field, "type"), firewallErrorTypes, e.Type)
	if err != nil {
		return vpn.FirewallPolicyError{}, err
	}
	out := vpn.FirewallPolicyError{Type: t}
	if t == vpn.FirewallLocked {
		out.LockName = derefString(e.LockName)
		out.LockPID = e.LockPid
	}
	return out, nil
}

func relayInfo(field string, r *pb.TunnelStateRelayInfo) (vpn.RelayInfo, error) {
	if r == nil {
		return vpn.RelayInfo{}, missing(field)
	}
	ep, err := tunnelEndpoint(join(field, "tunnel_endpoint"), r.TunnelEndpoint)
	if err != nil {
		return vpn.RelayInfo{}, err
	}
	info := vpn.RelayInfo{Endpoint: ep}
	if r.Location != nil {
		l := location(r.Location)
		info.Location = &l
	}
	return info, nil
}

func tunnelEndpoint(field string, e *pb.TunnelEndpoint) (vpn.TunnelEndpoint, error) {
	if e == nil {
		return vpn.TunnelEndpoint{}, missing(field)
	}
	proto, err := enum(join(field, "protocol"), transportProtocols, e.Protocol)
	if err != nil {
		return vpn.TunnelEndpoint{}, err
	}
	tt, err := enum(join(field, "tunnel_type"), tunnelTypes, e.TunnelType)
	if err != nil {
		return vpn.TunnelEndpoint{}, err
	}
	out := vpn.TunnelEndpoint{
		Address:          e.Address,
		Protocol:         proto,
		TunnelType:       tt,
		QuantumResistant: e.QuantumResistant,
		Daita:            e.Daita,
	}
	if p := e.Proxy; p != nil {
		pp, err := enum(join(field, "proxy.protocol"), transportProtocols, p.Protocol)
		if err != nil {
			return vpn.TunnelEndpoint{}, err
		}
		pt, err := enum(join(field, "proxy.proxy_type"), proxyTypes, p.ProxyType)
		if err != nil {
			return vpn.TunnelEndpoint{}, err
		}
		out.Proxy = &vpn.ProxyEndpoint{Address: p.Address, Protocol: pp, ProxyType: pt}
	}
	if o := e.Obfuscation; o != nil {
		op, err := enum(join(field, "obfuscation.protocol"), transportProtocols, o.Protocol)
		if err != nil {
			return vpn.TunnelEndpoint{}, err
		}
		ot, err := enum(join(field, "obfuscation.obfuscation_type"), obfuscationTypes, o.ObfuscationType)
		if err != nil {
			return vpn.TunnelEndpoint{}, err
		}
		out.Obfuscation = &vpn.ObfuscationEndpoint{Address: o.Address, Port: o.Port, Protocol: op, Type: ot}
	}
	if en := e.EntryEndpoint; en != nil {
		ep, err := enum(join(field, "entry_endpoint.protocol"), transportProtocols, en.Protocol)
		if err != nil {
			return vpn.TunnelEndpoint{}, err
		}
		out.Entry = &vpn.Endpoint{Address: en.Address, Protocol: ep}
	}
	return out, nil
}

func location(l *pb.GeoIpLocation) vpn.Location {
	return vpn.Location{
		IPv4:           cloneString(l.Ipv4),
		IPv6:           cloneString(l.Ipv6),
		Country:        l.Country,
		City:           cloneString(l.City),
		Latitude:       l.Latitude,
		Longitude:      l.Longitude,
		MullvadExitIP:  l.MullvadExitIp,
		Hostname:       cloneString(l.Hostname),
		BridgeHostname: cloneString(l.BridgeHostname),
		EntryHostname:  cloneString(l.EntryHostname),
		Provider:       cloneString(l.Provider),
	}
}
