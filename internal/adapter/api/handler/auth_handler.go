package handler

import (
	"github.com/labstack/echo/v4"

	"swapbook/internal/usecase"
	"swapbook/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// CreateSession upserts the profile for the verified identity. The
// sign-in popup itself happens client-side; by the time this is
// called the middleware has already verified the token.
func (h *AuthHandler) CreateSession(c echo.Context) error {
	identity := c.Get("identity").(*usecase.Identity)

	profile, err := h.authUseCase.EnsureSession(c.Request().Context(), identity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

// Logout has no server-side session state to clear; the client drops
// its token.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	profile, err := h.authUseCase.Profile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

type changeCityRequest struct {
	City string `json:"city" validate:"required"`
}

func (h *AuthHandler) ChangeCity(c echo.Context) error {
	var req changeCityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	profile, err := h.authUseCase.ChangeCity(c.Request().Context(), uid, req.City)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}
