package healthcheck

import (
	"github.com/warrantify/goapi/base/ctx"
)

type Status struct {
	Healthy     string `json:"healthy"`
	BlockNumber uint64 `json:"blockNumber"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingChain(context ctx.Ctx) (uint64, error)
	PingCache(context ctx.Ctx) error
}
