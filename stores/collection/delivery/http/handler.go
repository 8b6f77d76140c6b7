package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/delivery"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/collection"
	"github.com/warrantify/goapi/middleware"
	authMiddleware "github.com/warrantify/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	collection collection.Usecase
}

func New(e *echo.Echo, collection collection.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{collection}

	gs := e.Group("/collections")

	gs.GET("", h.getAll, authMiddleware.OptionalAuth())

	gs.POST("/refresh", h.refresh, authMiddleware.OptionalAuth())

	gs.GET("/owned", h.getOwned, authMiddleware.Auth())

	gs.POST("", h.create, authMiddleware.Auth())

	gs.GET("/:address", h.get, middleware.IsValidAddress("address"), middleware.CacheHttp(1*time.Minute))
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	wallet := authMiddleware.Wallet(c)
	if res, err := h.collection.List(ctx, wallet); err != nil {
		ctx.WithField("err", err).Error("collection.List failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else if ctx.Err() != nil {
		// client went away, nothing to deliver
		return nil
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) refresh(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	wallet := authMiddleware.Wallet(c)
	if res, err := h.collection.RefreshCounts(ctx, wallet); err != nil {
		ctx.WithField("err", err).Error("collection.RefreshCounts failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else if ctx.Err() != nil {
		return nil
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getOwned(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.collection.ListOwned(ctx, authMiddleware.Wallet(c)); err != nil {
		ctx.WithField("err", err).Error("collection.ListOwned failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address")).ToLower()
	if info, err := h.collection.GetInfo(ctx, address); err != nil {
		ctx.WithField("err", err).Error("collection.GetInfo failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, collection.FromInfo(address, info, 0))
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		BrandName        string `json:"brandName" validate:"required"`
		ProductName      string `json:"productName" validate:"required"`
		CollectionName   string `json:"collectionName" validate:"required"`
		CollectionSymbol string `json:"collectionSymbol" validate:"required"`
		Description      string `json:"description" validate:"required"`
		// months, accepts a json number or a numeric string
		WarrantPeriod decimal.Decimal `json:"warrantPeriod"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(p); err != nil {
		ctx.WithField("err", err).Error("validate failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.collection.Create(ctx, authMiddleware.Wallet(c), &collection.CreateParams{
		BrandName:        p.BrandName,
		ProductName:      p.ProductName,
		CollectionName:   p.CollectionName,
		CollectionSymbol: p.CollectionSymbol,
		Description:      p.Description,
		WarrantyMonths:   p.WarrantPeriod,
	})
	if err != nil {
		ctx.WithField("err", err).Error("collection.Create failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}
