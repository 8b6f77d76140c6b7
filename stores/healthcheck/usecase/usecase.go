package usecase

import (
	"github.com/warrantify/goapi/base/ctx"
	hcdomain "github.com/warrantify/goapi/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) (*hcdomain.Status, error) {
	if err := im.repo.PingCache(context); err != nil {
		return nil, err
	}
	n, err := im.repo.PingChain(context)
	if err != nil {
		return nil, err
	}
	return &hcdomain.Status{Healthy: "ok", BlockNumber: n}, nil
}
