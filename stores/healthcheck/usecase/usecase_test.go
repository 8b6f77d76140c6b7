package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/service/cache"
	"github.com/warrantify/goapi/service/cache/provider/primitive"
	"github.com/warrantify/goapi/service/chain/mocks"
	"github.com/warrantify/goapi/stores/healthcheck/repository"
)

func TestCheck(t *testing.T) {
	req := require.New(t)
	client := mocks.NewClient(t)
	client.On("BlockNumber", mock.Anything).Return(uint64(42), nil).Once()
	client.On("BlockNumber", mock.Anything).Return(uint64(0), domain.ErrNetworkUnavailable).Once()

	uc := New(repository.New(client, cache.New(cache.ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "healthcheck",
		Cache: primitive.NewPrimitive("healthcheck", 1),
	})))

	status, err := uc.Check(ctx.Background())
	req.NoError(err)
	req.Equal(uint64(42), status.BlockNumber)
	req.Equal("ok", status.Healthy)

	_, err = uc.Check(ctx.Background())
	req.ErrorIs(err, domain.ErrNetworkUnavailable)
}
