// Package vpn holds the domain model exchanged with the VPN daemon.
//
// Wire variants are modeled as sealed interfaces. The feeds that carry most of
// the daemon's state (tunnel state, daemon events, upgrade events and access
// methods) come with visitor interfaces so that a consumer which handles one
// of them must handle every variant to compile.
package vpn

import "fmt"

// Constraint is either "any" or a single permitted value.
type Constraint[T any] struct {
	value T
	set   bool
}

// Any returns the unconstrained value.
func Any[T any]() Constraint[T] { return Constraint[T]{} }

// Only returns a constraint permitting only v.
func Only[T any](v T) Constraint[T] { return Constraint[T]{value: v, set: true} }

// IsAny reports whether the constraint permits every value.
func (c Constraint[T]) IsAny() bool { return !c.set }

// Value returns the constrained value and whether one is set.
func (c Constraint[T]) Value() (T, bool) { return c.value, c.set }

func (c Constraint[T]) String() string {
	if !c.set {
		return "any"
	}
	return fmt.Sprintf("only %v", c.value)
}

// TransportProtocol is the transport a tunnel or proxy runs over.
type TransportProtocol int

const (
	UDP TransportProtocol = iota + 1
	TCP
)

func (p TransportProtocol) String() string {
	switch p {
	case UDP:
		return "udp"
	case TCP:
		return "tcp"
	default:
		return "unknown"
	}
}

// TunnelType is the VPN protocol of a tunnel.
type TunnelType int

const (
	OpenVPN TunnelType = iota + 1
	WireGuard
)

func (t TunnelType) String() string {
	switch t {
	case OpenVPN:
		return "OpenVPN"
	case WireGuard:
		return "WireGuard"
	default:
		return "unknown"
	}
}

// IPVersion selects an address family.
type IPVersion int

const (
	IPv4 IPVersion = iota + 1
	IPv6
)

func (v IPVersion) String() string {
	switch v {
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	default:
		return "unknown"
	}
}

// Ownership filters relays by who operates them.
type Ownership int

const (
	OwnershipAny Ownership = iota + 1
	OwnershipMullvadOwned
	OwnershipRented
)

func (o Ownership) String() string {
	switch o {
	case OwnershipAny:
		return "any"
	case OwnershipMullvadOwned:
		return "owned"
	case OwnershipRented:
		return "rented"
	default:
		return "unknown"
	}
}
