package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/log"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/keys"
	"github.com/warrantify/goapi/service/cache"
	"github.com/warrantify/goapi/service/cache/provider/primitive"
	"golang.org/x/xerrors"
)

type resolver interface {
	resolve(name string) (common.Address, error)
	reverseResolve(address common.Address) (string, error)
}

type goensResolver struct {
	backend bind.ContractBackend
}

func (r *goensResolver) resolve(name string) (common.Address, error) {
	return goens.Resolve(r.backend, name)
}

func (r *goensResolver) reverseResolve(address common.Address) (string, error) {
	return goens.ReverseResolve(r.backend, address)
}

type impl struct {
	resolver resolver
	cache    cache.Service
}

// New resolves names on the chain behind backend, results are kept in memory for a day
func New(backend bind.ContractBackend) ENS {
	return newWithResolver(&goensResolver{backend})
}

func newWithResolver(r resolver) *impl {
	return &impl{
		resolver: r,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   24 * time.Hour,
			Pfx:   keys.PfxEns,
			Cache: primitive.NewPrimitive("ens", 16),
		}),
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := keys.Key("resolve", name)
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolver.resolve(name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Error("failed to goens.Resolve")
			return nil, xerrors.Errorf("%v: %w", err, domain.ErrNetworkUnavailable)
		}
		val := domain.AddressFromCommon(addr)
		return &val, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}
	if res.IsEmpty() {
		return "", xerrors.Errorf("ens name %s: %w", name, domain.ErrNotFound)
	}

	return res, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.Key("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.resolver.reverseResolve(address.ToCommon())
		if fmt.Sprint(err) == "not a resolver" || fmt.Sprint(err) == "no resolution" {
			empty := ""
			return &empty, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
			}).Error("failed to goens.ReverseResolve")
			return nil, xerrors.Errorf("%v: %w", err, domain.ErrNetworkUnavailable)
		}
		return &name, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}
