package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/service/ens/mocks"
)

func TestResolve(t *testing.T) {
	req := require.New(t)
	m := mocks.NewENS(t)
	m.On("Resolve", mock.Anything, "brand.eth").Return(domain.Address("0x00000000000000000000000000000000000000b1"), nil).Once()
	m.On("Resolve", mock.Anything, "nobody.eth").Return(domain.Address(""), domain.ErrNotFound).Once()
	h := &handler{m}

	serve := func(name string) *httptest.ResponseRecorder {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ens/resolve/"+name, nil), rec)
		c.SetParamNames("name")
		c.SetParamValues(name)
		c.Set("ctx", ctx.Background())
		req.NoError(h.resolve(c))
		return rec
	}

	rec := serve("brand.eth")
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"data":"0x00000000000000000000000000000000000000b1","status":"success"}`, rec.Body.String())

	req.Equal(http.StatusNotFound, serve("nobody.eth").Code)
	req.Equal(http.StatusBadRequest, serve("0x01").Code)
}
