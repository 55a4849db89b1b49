package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"swapbook/internal/adapter/api/handler"
	"swapbook/pkg/config"
)

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := handler.GetHealthHandler()

	if assert.NoError(t, h.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "running")
	}
}

func TestFeaturedInfo(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/featured-info", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cfg := &config.Config{
		FeaturedPixKey: "557a2d16-c830-4777-884a-834943c1b05e",
		FeaturedPrice:  "R$ 5,00",
	}
	h := handler.NewPaymentHandler(cfg)

	if assert.NoError(t, h.GetFeaturedInfo(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "557a2d16-c830-4777-884a-834943c1b05e")
		assert.Contains(t, rec.Body.String(), "R$ 5,00")
	}
}
