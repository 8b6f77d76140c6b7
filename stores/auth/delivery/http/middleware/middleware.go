package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
)

const walletKey = "wallet"

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Auth rejects requests without a valid bearer token
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

// OptionalAuth connects the wallet when a token is present, otherwise the
// request continues with a disconnected wallet
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if ads, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("address", domain.Address(ads))
		c.Set(walletKey, domain.ConnectedWallet(domain.Address(ads)))
		return true, nil
	}
}

// Wallet returns the wallet the request was authenticated with
func Wallet(c echo.Context) domain.Wallet {
	if w, ok := c.Get(walletKey).(domain.Wallet); ok {
		return w
	}
	return domain.DisconnectedWallet()
}
