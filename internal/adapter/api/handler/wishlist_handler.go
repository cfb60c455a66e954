package handler

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/domain/entity"
	"bookshare/internal/usecase"
	"bookshare/pkg/errors"
	"bookshare/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *WishlistHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)

	items, err := h.wishlistUseCase.Get(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

type addWishlistItemRequest struct {
	ListingID  string             `json:"listing_id" validate:"required"`
	PriceAlert *entity.PriceAlert `json:"price_alert"`
}

func (h *WishlistHandler) Add(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req addWishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.wishlistUseCase.Add(c.Request().Context(), uid, usecase.AddWishlistItemInput{
		ListingID:  req.ListingID,
		PriceAlert: req.PriceAlert,
	}); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"message": "Added to wishlist"})
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.wishlistUseCase.Remove(c.Request().Context(), uid, c.Param("listingId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Removed from wishlist"})
}

func (h *WishlistHandler) Contains(c echo.Context) error {
	uid := c.Get("uid").(string)

	contains, err := h.wishlistUseCase.Contains(c.Request().Context(), uid, c.Param("listingId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"in_wishlist": contains})
}
