package handler

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/domain/entity"
	"bookshare/internal/usecase"
	"bookshare/pkg/errors"
	"bookshare/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=2"`
	Phone             *string          `json:"phone" validate:"omitempty,e164"`
	AvatarURL         *string          `json:"avatar_url" validate:"omitempty,url"`
	AcademicInterests *[]string        `json:"academic_interests"`
	Location          *entity.Location `json:"location"`
	LibraryName       *string          `json:"library_name" validate:"omitempty,min=2"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Name:              req.Name,
		Phone:             req.Phone,
		AvatarURL:         req.AvatarURL,
		AcademicInterests: req.AcademicInterests,
		Location:          req.Location,
		LibraryName:       req.LibraryName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type submitKYCRequest struct {
	Documents []entity.KYCDocument `json:"documents" validate:"required,min=1,dive"`
}

func (h *UserHandler) SubmitKYC(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req submitKYCRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SubmitKYC(c.Request().Context(), uid, req.Documents)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// ReviewKYC is the admin verdict endpoint.
func (h *UserHandler) ReviewKYC(c echo.Context) error {
	userID := c.Param("id")

	var req struct {
		Verdict string `json:"verdict" validate:"required,oneof=verified rejected"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.ReviewKYC(c.Request().Context(), userID, req.Verdict); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "KYC review recorded"})
}

func (h *UserHandler) Deactivate(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.userUseCase.Deactivate(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Account deactivated"})
}
