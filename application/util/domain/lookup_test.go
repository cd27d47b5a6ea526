package domain

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LookuperTestSuite struct {
	suite.Suite

	initial  map[string][]netip.Addr
	lookuper Lookuper
}

func (s *LookuperTestSuite) SetupTest() {
	s.initial = map[string][]netip.Addr{
		"localhost":   {netip.MustParseAddr("127.0.0.1"), netip.MustParseAddr("::1")},
		"example.com": {netip.MustParseAddr("1.1.1.1")}, // It's actually cloudflare. But who cares?
	}
}

type mapLookuperTestSuite struct{ LookuperTestSuite }

func TestMapLookuperTestSuite(t *testing.T) {
	suite.Run(t, new(mapLookuperTestSuite))
}

func (s *mapLookuperTestSuite) SetupTest() {
	s.LookuperTestSuite.SetupTest()
	s.lookuper = NewMapLookuper(s.initial)
}

func (s *mapLookuperTestSuite) TestLookup() {
	addrs, err := s.lookuper.LookupIP(context.Background(), "localhost")
	s.NoError(err)
	s.Equal(s.initial["localhost"], addrs)

	addrs, err = s.lookuper.LookupIP(context.Background(), "example.com")
	s.NoError(err)
	s.Equal([]netip.Addr{netip.MustParseAddr("1.1.1.1")}, addrs)

	// Non-existent.
	addrs, err = s.lookuper.LookupIP(context.Background(), "non-existent.com")
	s.ErrorIs(err, ErrDomainNotFound)
	s.Nil(addrs)
}

func (s *mapLookuperTestSuite) TestLookupInitCopied() {
	s.initial["localhost"] = []netip.Addr{netip.MustParseAddr("10.0.0.1")}

	addrs, err := s.lookuper.LookupIP(context.Background(), "localhost")
	s.NoError(err)
	s.Equal(netip.MustParseAddr("127.0.0.1"), addrs[0])
}

type netLookuperTestSuite struct{ suite.Suite }

func TestNetLookuperTestSuite(t *testing.T) {
	suite.Run(t, new(netLookuperTestSuite))
}

func (s *netLookuperTestSuite) TestLookupInvalidTLD() {
	// .invalid is reserved and never resolves.
	// Reference: https://datatracker.ietf.org/doc/html/rfc2606#section-2
	_, err := NewNetLookuper(nil).LookupIP(context.Background(), "no-such-host.invalid")
	s.Error(err)
}
