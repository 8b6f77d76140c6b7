package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/delivery"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/middleware"
	"github.com/warrantify/goapi/service/ens"
)

type handler struct {
	ens ens.ENS
}

// New exposes name lookups so a mint form can preview the recipient before submitting
func New(e *echo.Echo, ens ens.ENS) {
	h := &handler{
		ens,
	}

	g := e.Group("/ens")

	g.GET("/resolve/:name", h.resolve)

	g.GET("/reverse-resolve/:address", h.reverseResolve, middleware.IsValidAddress("address"))
}

func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	name := c.Param("name")
	if !ens.IsName(name) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	address, err := h.ens.Resolve(ctx, name)
	if err != nil {
		ctx.WithField("err", err).Error("ens.Resolve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

func (h *handler) reverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	name, err := h.ens.ReverseResolve(ctx, domain.Address(c.Param("address")))
	if err != nil {
		ctx.WithField("err", err).Error("ens.ReverseResolve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, name)
}
