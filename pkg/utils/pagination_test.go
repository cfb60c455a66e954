package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := GetPaginationParams(paginationContext(""))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
	assert.Equal(t, 0, params.Offset)
}

func TestGetPaginationParams(t *testing.T) {
	params := GetPaginationParams(paginationContext("page=3&limit=10"))

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.PageSize)
	assert.Equal(t, 20, params.Offset)
}

func TestGetPaginationParamsBounds(t *testing.T) {
	params := GetPaginationParams(paginationContext("page=-1&limit=500"))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize, "oversized limit falls back to default")

	params = GetPaginationParams(paginationContext("page=abc&limit=xyz"))
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
}
