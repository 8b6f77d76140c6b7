package repository

import (
	"time"

	"github.com/warrantify/goapi/base/ctx"
	hcdomain "github.com/warrantify/goapi/domain/healthcheck"
	"github.com/warrantify/goapi/service/cache"
	"github.com/warrantify/goapi/service/chain"
)

type impl struct {
	chain chain.Client
	cache cache.Service
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(
	chain chain.Client,
	cache cache.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		chain: chain,
		cache: cache,
	}
}

func (im *impl) PingChain(context ctx.Ctx) (uint64, error) {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	n, err := im.chain.BlockNumber(ctx)
	if err != nil {
		context.WithField("err", err).Error("ping chain error")
		return 0, err
	}
	return n, nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if err := im.cache.Set(context, "testset", 1); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}
	return nil
}
