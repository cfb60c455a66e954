package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"bookshare/internal/domain/entity"
	"bookshare/internal/usecase"
	"bookshare/pkg/errors"
	"bookshare/pkg/response"
	"bookshare/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type createListingRequest struct {
	Title         string  `json:"title" validate:"required,min=2"`
	Author        string  `json:"author" validate:"required"`
	ISBN          string  `json:"isbn"`
	Edition       string  `json:"edition"`
	Description   string  `json:"description" validate:"required,min=10"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	OriginalPrice float64 `json:"original_price" validate:"omitempty,gt=0"`
	Condition     string  `json:"condition" validate:"required,oneof=new like-new good fair"`
	Category      string  `json:"category" validate:"required"`
	Subject       string  `json:"subject"`
	Course        string  `json:"course"`
	ExamType      string  `json:"exam_type"`

	ListingType string              `json:"listing_type" validate:"required,oneof=physical digital"`
	DigitalFile *entity.DigitalFile `json:"digital_file"`

	SaleType       string     `json:"sale_type" validate:"required,oneof=fixed negotiable auction"`
	AuctionEndDate *time.Time `json:"auction_end_date"`

	Images          []entity.ListingImage  `json:"images" validate:"omitempty,dive"`
	Stock           int                    `json:"stock" validate:"omitempty,gte=0"`
	Location        entity.ListingLocation `json:"location"`
	DeliveryOptions []string               `json:"delivery_options" validate:"omitempty,dive,oneof=pickup delivery cod"`
}

func (h *ListingHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Create(c.Request().Context(), uid, usecase.CreateListingInput{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Edition:         req.Edition,
		Description:     req.Description,
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		Condition:       req.Condition,
		Category:        req.Category,
		Subject:         req.Subject,
		Course:          req.Course,
		ExamType:        req.ExamType,
		ListingType:     req.ListingType,
		DigitalFile:     req.DigitalFile,
		SaleType:        req.SaleType,
		AuctionEndDate:  req.AuctionEndDate,
		Images:          req.Images,
		Stock:           req.Stock,
		Location:        req.Location,
		DeliveryOptions: req.DeliveryOptions,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.listingUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) List(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	filter := map[string]interface{}{}
	for _, key := range []string{"category", "condition", "subject", "exam_type", "sale_type", "listing_type", "status"} {
		if v := c.QueryParam(key); v != "" {
			filterKey := key
			switch key {
			case "exam_type":
				filterKey = "examType"
			case "sale_type":
				filterKey = "saleType"
			case "listing_type":
				filterKey = "listingType"
			}
			filter[filterKey] = v
		}
	}

	listings, total, err := h.listingUseCase.List(c.Request().Context(), filter, c.QueryParam("sort"), p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, p.Page, p.PageSize)
}

func (h *ListingHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)
	p := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListBySeller(c.Request().Context(), uid, c.QueryParam("status"), p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, p.Page, p.PageSize)
}

type updateListingRequest struct {
	Title           *string                 `json:"title" validate:"omitempty,min=2"`
	Author          *string                 `json:"author"`
	ISBN            *string                 `json:"isbn"`
	Edition         *string                 `json:"edition"`
	Description     *string                 `json:"description" validate:"omitempty,min=10"`
	Price           *float64                `json:"price" validate:"omitempty,gt=0"`
	OriginalPrice   *float64                `json:"original_price"`
	Condition       *string                 `json:"condition" validate:"omitempty,oneof=new like-new good fair"`
	Subject         *string                 `json:"subject"`
	Course          *string                 `json:"course"`
	ExamType        *string                 `json:"exam_type"`
	Images          *[]entity.ListingImage  `json:"images"`
	Stock           *int                    `json:"stock" validate:"omitempty,gte=0"`
	Location        *entity.ListingLocation `json:"location"`
	DeliveryOptions *[]string               `json:"delivery_options"`
}

func (h *ListingHandler) Update(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Update(c.Request().Context(), uid, c.Param("id"), usecase.UpdateListingInput{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Edition:         req.Edition,
		Description:     req.Description,
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		Condition:       req.Condition,
		Subject:         req.Subject,
		Course:          req.Course,
		ExamType:        req.ExamType,
		Images:          req.Images,
		Stock:           req.Stock,
		Location:        req.Location,
		DeliveryOptions: req.DeliveryOptions,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) UpdateStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Status string `json:"status" validate:"required,oneof=pending active sold inactive"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.UpdateStatus(c.Request().Context(), uid, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.listingUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Listing deleted"})
}

func (h *ListingHandler) PlaceBid(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.PlaceBid(c.Request().Context(), uid, c.Param("id"), req.Amount)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}
