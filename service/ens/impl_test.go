package ens

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
)

type fakeResolver struct {
	names   map[string]common.Address
	err     error
	calls   int
}

func (f *fakeResolver) resolve(name string) (common.Address, error) {
	f.calls++
	if f.err != nil {
		return common.Address{}, f.err
	}
	addr, ok := f.names[name]
	if !ok {
		return common.Address{}, errors.New("unregistered name")
	}
	return addr, nil
}

func (f *fakeResolver) reverseResolve(address common.Address) (string, error) {
	for name, addr := range f.names {
		if addr == address {
			return name, nil
		}
	}
	return "", errors.New("not a resolver")
}

type ensSuite struct {
	suite.Suite

	resolver *fakeResolver
	im       *impl
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) SetupTest() {
	s.resolver = &fakeResolver{names: map[string]common.Address{
		"brand.eth": common.HexToAddress("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872"),
	}}
	s.im = newWithResolver(s.resolver)
}

func (s *ensSuite) TestResolve() {
	address := domain.Address("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")

	res, err := s.im.Resolve(ctx.Background(), "brand.eth")
	if s.NoError(err) {
		s.Equal(address.ToLowerStr(), res.ToLowerStr())
	}

	// served from cache
	_, err = s.im.Resolve(ctx.Background(), "brand.eth")
	s.NoError(err)
	s.Equal(1, s.resolver.calls)
}

func (s *ensSuite) TestResolveUnregistered() {
	_, err := s.im.Resolve(ctx.Background(), "nobody.eth")
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *ensSuite) TestResolveFailed() {
	s.resolver.err = errors.New("connection refused")
	_, err := s.im.Resolve(ctx.Background(), "other.eth")
	s.True(errors.Is(err, domain.ErrNetworkUnavailable))
}

func (s *ensSuite) TestReverseResolve() {
	res, err := s.im.ReverseResolve(ctx.Background(), "0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")
	if s.NoError(err) {
		s.Equal("brand.eth", res)
	}

	res, err = s.im.ReverseResolve(ctx.Background(), "0x0000000000000000000000000000000000000001")
	s.NoError(err)
	s.Equal("", res)
}

func (s *ensSuite) TestIsName() {
	s.True(IsName("brand.eth"))
	s.False(IsName("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872"))
	s.False(IsName("brand"))
}
