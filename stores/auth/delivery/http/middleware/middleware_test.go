package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/mocks"
	"golang.org/x/xerrors"
)

func serve(mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, domain.Wallet) {
	e := echo.New()
	var wallet domain.Wallet
	handler := mw(func(c echo.Context) error {
		wallet = Wallet(c)
		return c.NoContent(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if len(header) > 0 {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, wallet
}

func TestOptionalAuth(t *testing.T) {
	req := require.New(t)
	auth := &mocks.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "good").Return("0xabc", nil)
	m := New(auth)

	rec, wallet := serve(m.OptionalAuth(), "")
	req.Equal(http.StatusOK, rec.Code)
	req.False(wallet.IsConnected())

	rec, wallet = serve(m.OptionalAuth(), "Bearer good")
	req.Equal(http.StatusOK, rec.Code)
	req.Equal(domain.Address("0xabc"), wallet.Account)
}

func TestAuth(t *testing.T) {
	req := require.New(t)
	auth := &mocks.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "bad").Return("", xerrors.New("token is expired"))
	m := New(auth)

	rec, wallet := serve(m.Auth(), "")
	req.NotEqual(http.StatusOK, rec.Code)
	req.False(wallet.IsConnected())

	rec, wallet = serve(m.Auth(), "Bearer bad")
	req.Equal(http.StatusUnauthorized, rec.Code)
	req.False(wallet.IsConnected())
}
