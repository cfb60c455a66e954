package handler

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/usecase"
	"bookshare/pkg/errors"
	"bookshare/pkg/response"
	"bookshare/pkg/utils"
)

type BlogHandler struct {
	blogUseCase *usecase.BlogUseCase
}

func NewBlogHandler(blogUseCase *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
	}
}

type createBlogRequest struct {
	Title    string   `json:"title" validate:"required,min=2"`
	Content  string   `json:"content" validate:"required,min=10"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (h *BlogHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	blog, err := h.blogUseCase.Create(c.Request().Context(), uid, usecase.CreateBlogInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, blog)
}

func (h *BlogHandler) Get(c echo.Context) error {
	blog, err := h.blogUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, blog)
}

func (h *BlogHandler) List(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	blogs, total, err := h.blogUseCase.List(c.Request().Context(), c.QueryParam("category"), p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, blogs, total, p.Page, p.PageSize)
}

func (h *BlogHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.blogUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Post deleted"})
}

func (h *BlogHandler) Like(c echo.Context) error {
	uid := c.Get("uid").(string)

	liked, err := h.blogUseCase.Like(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"liked": liked})
}

func (h *BlogHandler) Reply(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Content string `json:"content" validate:"required,min=1"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.blogUseCase.Reply(c.Request().Context(), uid, c.Param("id"), req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, reply)
}

func (h *BlogHandler) ListReplies(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	replies, total, err := h.blogUseCase.ListReplies(c.Request().Context(), c.Param("id"), p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, replies, total, p.Page, p.PageSize)
}
