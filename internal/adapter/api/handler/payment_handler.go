package handler

import (
	"github.com/labstack/echo/v4"

	"swapbook/pkg/config"
	"swapbook/pkg/response"
)

// PaymentHandler serves the featured-placement side-channel: a static
// PIX key and fee shown to users who checked the featured box. There
// is no programmatic payment verification anywhere; promotion to
// featured happens manually after the transfer is confirmed.
type PaymentHandler struct {
	cfg *config.Config
}

func NewPaymentHandler(cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		cfg: cfg,
	}
}

func (h *PaymentHandler) GetFeaturedInfo(c echo.Context) error {
	return response.Success(c, map[string]string{
		"pix_key": h.cfg.FeaturedPixKey,
		"price":   h.cfg.FeaturedPrice,
	})
}
