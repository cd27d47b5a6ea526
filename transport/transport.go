package transport

import "net/netip"

type Protocol string

const (
	TCP Protocol = "tcp"
	// UDP Protocol = "udp"
)

type Addr interface {
	NetworkAddr() netip.Addr
	Identifier() any // Extra identifier (e.g. port)
	String() string
}
