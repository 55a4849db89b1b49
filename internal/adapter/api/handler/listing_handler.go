package handler

import (
	"github.com/labstack/echo/v4"

	"swapbook/internal/domain/entity"
	"swapbook/internal/domain/service"
	"swapbook/internal/usecase"
	"swapbook/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
	authUseCase    *usecase.AuthUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase, authUseCase *usecase.AuthUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
		authUseCase:    authUseCase,
	}
}

type publishListingRequest struct {
	Text              string   `json:"text" validate:"required"`
	Image             string   `json:"image" validate:"required"`
	Category          string   `json:"category" validate:"required"`
	Types             []string `json:"types" validate:"required,min=1"`
	City              string   `json:"city" validate:"required"`
	RequestedFeatured bool     `json:"requested_featured"`
}

func (h *ListingHandler) PublishListing(c echo.Context) error {
	var req publishListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.Publish(c.Request().Context(), uid, usecase.PublishInput{
		Text:              req.Text,
		Image:             req.Image,
		Category:          req.Category,
		Types:             req.Types,
		City:              req.City,
		RequestedFeatured: req.RequestedFeatured,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

// ListListings serves the browse feed. Without an explicit city query
// param the session city pins the result, matching the app's
// city-scoped home screen.
func (h *ListingHandler) ListListings(c echo.Context) error {
	params := service.FeedParams{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
		City:     c.QueryParam("city"),
	}

	if params.City == "" {
		uid := c.Get("uid").(string)
		profile, err := h.authUseCase.Profile(c.Request().Context(), uid)
		if err != nil {
			return response.Error(c, err)
		}
		params.City = profile.City
	}

	listings, err := h.listingUseCase.Feed(c.Request().Context(), params)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

// GetCatalog exposes the category and offer-type enums so clients do
// not hard-code them.
func (h *ListingHandler) GetCatalog(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"categories": entity.Categories(),
		"types":      entity.ListingTypes(),
	})
}
