// Package tcp carries [transport.Conn] over the operating system's
// Transmission Control Protocol (TCP) sockets.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9293
package tcp

import (
	"context"
	"io"
	"net"
	"net/netip"
	"os"
	"syscall"
	"time"

	"minibrowser/transport"

	"github.com/pkg/errors"
)

type Addr struct {
	ipAddr netip.Addr
	port   uint16
}

var _ transport.Addr = Addr{}

func NewAddr(ipAddr netip.Addr, port uint16) Addr {
	return Addr{ipAddr.Unmap(), port}
}

func addrFrom(a net.Addr) Addr {
	tcpAddr, ok := a.(*net.TCPAddr)
	if !ok {
		return Addr{}
	}
	ap := tcpAddr.AddrPort()
	return NewAddr(ap.Addr(), ap.Port())
}

func (a Addr) Port() uint16             { return a.port }
func (a Addr) Identifier() any          { return a.port }
func (a Addr) NetworkAddr() netip.Addr  { return a.ipAddr }
func (a Addr) AddrPort() netip.AddrPort { return netip.AddrPortFrom(a.ipAddr, a.port) }
func (a Addr) String() string           { return a.AddrPort().String() }

type Dialer struct {
	timeout time.Duration
}

var _ transport.ConnDialer = (*Dialer)(nil)

// NewDialer creates a dialer. Zero timeout means only ctx bounds a dial.
func NewDialer(timeout time.Duration) *Dialer {
	return &Dialer{timeout: timeout}
}

func (d *Dialer) Dial(ctx context.Context, addr transport.Addr) (transport.Conn, error) {
	a, ok := addr.(Addr)
	if !ok {
		return nil, errors.Errorf("not a tcp address: %s", addr)
	}

	nd := net.Dialer{Timeout: d.timeout}
	c, err := nd.DialContext(ctx, string(transport.TCP), a.String())
	if err != nil {
		return nil, errors.Wrapf(err, "dialing %s", a)
	}

	tcpConn := c.(*net.TCPConn)
	if err := tcpConn.SetNoDelay(true); err != nil {
		tcpConn.Close()
		return nil, errors.Wrap(err, "setting TCP_NODELAY")
	}

	return newConn(tcpConn), nil
}

type conn struct {
	c *net.TCPConn

	local, remote Addr
}

var _ transport.Conn = (*conn)(nil)

func newConn(c *net.TCPConn) *conn {
	return &conn{
		c:      c,
		local:  addrFrom(c.LocalAddr()),
		remote: addrFrom(c.RemoteAddr()),
	}
}

func (c *conn) Read(p []byte) (n int, err error) {
	n, err = c.c.Read(p)
	return n, convertErr(err)
}

func (c *conn) Write(p []byte) (n int, err error) {
	n, err = c.c.Write(p)
	return n, convertErr(err)
}

// Close is idempotent.
func (c *conn) Close() error {
	if err := c.c.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func (c *conn) LocalAddr() transport.Addr  { return c.local }
func (c *conn) RemoteAddr() transport.Addr { return c.remote }

func (c *conn) SetReadDeadLine(t time.Time)  { _ = c.c.SetReadDeadline(t) }
func (c *conn) SetWriteDeadLine(t time.Time) { _ = c.c.SetWriteDeadline(t) }

func convertErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF),
		errors.Is(err, net.ErrClosed),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, syscall.ECONNRESET):
		return errors.Wrap(transport.ErrConnClosed, err.Error())
	case errors.Is(err, os.ErrDeadlineExceeded):
		return transport.ErrDeadLineExceeded
	default:
		return err
	}
}
