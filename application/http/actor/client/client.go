// Package client performs single-shot HTTP GET exchanges: one fresh
// connection per request, closed as soon as the response has been read.
package client

import (
	"bytes"
	"context"
	"io"
	"net/netip"

	"minibrowser/application/http"
	"minibrowser/application/util/domain"
	"minibrowser/application/util/uri"
	iolib "minibrowser/lib/io"
	"minibrowser/transport"
	"minibrowser/transport/tcp"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Client struct {
	opts Options

	logger *zap.Logger
	clock  clock.Clock

	lookuper   domain.Lookuper
	connDialer transport.ConnDialer

	combineAddr CombineAddrFunc
}

type CombineAddrFunc func(ip netip.Addr, port uint16) transport.Addr

func New(
	d transport.ConnDialer,
	lookuper domain.Lookuper,
	logger *zap.Logger,
	clock clock.Clock,
	opts Options,
) *Client {
	client := &Client{
		connDialer: d,
		lookuper:   lookuper,
		logger:     logger,
		clock:      clock,
		opts:       opts.withDefaults(),
	}

	client.combineAddr = func(ip netip.Addr, port uint16) transport.Addr {
		return tcp.NewAddr(ip, port)
	}

	return client
}

// Fetch sends a GET for target and returns everything the peer sent until
// it closed the connection, up to the configured capacity.
// The connection is closed before Fetch returns.
func (c *Client) Fetch(ctx context.Context, target uri.Target) (http.RawResponse, error) {
	addrs, err := c.resolve(ctx, target)
	if err != nil {
		return http.RawResponse{}, err
	}

	conn, err := c.dial(ctx, target, addrs)
	if err != nil {
		return http.RawResponse{}, err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			c.logger.Warn("closing connection", zap.Stringer("remote", conn.RemoteAddr()), zap.Error(err))
		}
	}()

	if err := c.send(conn, target); err != nil {
		return http.RawResponse{}, newError(FailureSend, target.Addr(), err)
	}

	raw, err := c.receive(conn)
	if err != nil {
		return http.RawResponse{}, newError(FailureReceive, target.Addr(), err)
	}

	c.logger.Debug("response received",
		zap.String("target", target.String()),
		zap.Int("bytes", raw.Len()),
		zap.Bool("truncated", raw.Truncated),
	)

	return raw, nil
}

func (c *Client) resolve(ctx context.Context, target uri.Target) ([]transport.Addr, error) {
	port := target.PortNumber()
	if port == 0 {
		return nil, newError(FailureResolve, target.Addr(), errors.Errorf("invalid port %q", target.Port))
	}

	var ipAddrs []netip.Addr
	if addr, err := netip.ParseAddr(target.Host); err == nil {
		ipAddrs = []netip.Addr{addr}
	} else {
		// Host is a domain name. Resolve it to the ip address.
		result, err := c.lookuper.LookupIP(ctx, target.Host)
		if err != nil {
			return nil, newError(FailureResolve, target.Addr(), errors.Wrapf(err, "lookup for host(%s) failed", target.Host))
		}
		if len(result) == 0 {
			return nil, newError(FailureResolve, target.Addr(), domain.ErrDomainNotFound)
		}

		ipAddrs = result
	}

	addrs := make([]transport.Addr, 0, len(ipAddrs))
	for _, ip := range ipAddrs {
		addrs = append(addrs, c.combineAddr(ip, port))
	}

	return addrs, nil
}

// dial walks the candidates in order and keeps the first connection made.
func (c *Client) dial(ctx context.Context, target uri.Target, addrs []transport.Addr) (transport.Conn, error) {
	var errs error
	for _, addr := range addrs {
		conn, err := c.connDialer.Dial(ctx, addr)
		if err == nil {
			c.logger.Debug("connected", zap.String("target", target.Addr()), zap.Stringer("remote", addr))
			return conn, nil
		}

		c.logger.Debug("dial failed", zap.Stringer("remote", addr), zap.Error(err))
		errs = multierr.Append(errs, err)

		if ctx.Err() != nil {
			break
		}
	}

	return nil, newError(FailureConnect, target.Addr(), errs)
}

func (c *Client) send(conn transport.Conn, target uri.Target) error {
	enc := http.NewRequestEncoder(conn, c.opts.Send.Encode)
	request := http.NewGetRequest(target, c.opts.Send.Version)

	if err := enc.Encode(request); err != nil {
		return errors.Wrap(err, "writing request")
	}

	return nil
}

func (c *Client) receive(conn transport.Conn) (http.RawResponse, error) {
	if timeout := c.opts.Timeout.ReadTimeout; timeout > 0 {
		conn.SetReadDeadLine(c.clock.Now().Add(timeout))
	}

	limit := c.opts.Receive.MaxResponseSize
	buf := bytes.NewBuffer(make([]byte, 0, min(limit, 4096)))

	r := iolib.LimitReader(&connClosedReader{r: conn}, limit)
	if _, err := buf.ReadFrom(r); err != nil {
		return http.RawResponse{}, errors.Wrap(err, "reading response")
	}

	return http.RawResponse{
		Bytes:     buf.Bytes(),
		Truncated: r.Exhausted(),
	}, nil
}

// connClosedReader overwrites [transport.ErrConnClosed] as [io.EOF].
type connClosedReader struct{ r io.Reader }

func (r *connClosedReader) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)
	if errors.Is(err, transport.ErrConnClosed) {
		return n, io.EOF
	}
	return n, err
}
