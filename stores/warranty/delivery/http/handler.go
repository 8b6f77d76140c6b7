package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/delivery"
	"github.com/warrantify/goapi/domain/warranty"
	authMiddleware "github.com/warrantify/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	warranty warranty.Usecase
}

func New(e *echo.Echo, warranty warranty.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{warranty}

	g := e.Group("/warranty")

	g.GET("/verify", h.verify)

	g.POST("/mint", h.mint, authMiddleware.Auth())
}

// verify always answers 200, the outcome is in the result message
func (h *handler) verify(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Collection string `query:"collection"`
		TokenId    string `query:"tokenId"`
		MonthStyle string `query:"monthStyle"`
		WithTime   bool   `query:"withTime"`
		Timezone   string `query:"timezone"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		p = &params{
			Collection: c.QueryParam("collection"),
			TokenId:    c.QueryParam("tokenId"),
		}
	}

	res := h.warranty.Verify(ctx, p.Collection, p.TokenId, warranty.VerifyOptions{
		MonthStyle: p.MonthStyle,
		WithTime:   p.WithTime,
		Timezone:   p.Timezone,
	})
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	params := &warranty.MintParams{
		Collection:     c.FormValue("collection"),
		Recipient:      c.FormValue("recipient"),
		ProductSerial:  c.FormValue("productSerial"),
		Description:    c.FormValue("description"),
		AdditionalData: c.FormValue("metadata"),
		ImageData:      c.FormValue("imageData"),
	}

	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			ctx.WithField("err", err).Error("FormFile.Open failed")
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
		}
		defer f.Close()
		params.Image = f
		params.ImageName = fh.Filename
	} else if err != http.ErrMissingFile {
		ctx.WithField("err", err).Warn("c.FormFile failed")
	}

	res, err := h.warranty.Mint(ctx, authMiddleware.Wallet(c), params)
	if err != nil {
		ctx.WithField("err", err).Error("warranty.Mint failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}
