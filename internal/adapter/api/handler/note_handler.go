package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"bookshare/internal/usecase"
	"bookshare/pkg/errors"
	"bookshare/pkg/response"
	"bookshare/pkg/utils"
)

type NoteHandler struct {
	noteUseCase *usecase.NoteUseCase
}

func NewNoteHandler(noteUseCase *usecase.NoteUseCase) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUseCase,
	}
}

type createNoteRequest struct {
	Title       string  `json:"title" validate:"required,min=2"`
	Subject     string  `json:"subject" validate:"required"`
	Class       string  `json:"class" validate:"required"`
	Board       string  `json:"board"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Pages       int     `json:"pages" validate:"omitempty,gt=0"`
	FileID      string  `json:"file_id" validate:"required"`
}

func (h *NoteHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	note, err := h.noteUseCase.Create(c.Request().Context(), uid, usecase.CreateNoteInput{
		Title:       req.Title,
		Subject:     req.Subject,
		Class:       req.Class,
		Board:       req.Board,
		Description: req.Description,
		Price:       req.Price,
		Pages:       req.Pages,
		FileID:      req.FileID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, note)
}

func (h *NoteHandler) Get(c echo.Context) error {
	note, err := h.noteUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, note)
}

func (h *NoteHandler) List(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	filter := map[string]interface{}{}
	for _, key := range []string{"subject", "class", "board"} {
		if v := c.QueryParam(key); v != "" {
			filter[key] = v
		}
	}

	notes, total, err := h.noteUseCase.List(c.Request().Context(), filter, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, notes, total, p.Page, p.PageSize)
}

func (h *NoteHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.noteUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Note deleted"})
}

// Download streams the note file to the client.
func (h *NoteHandler) Download(c echo.Context) error {
	reader, contentType, size, err := h.noteUseCase.Download(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	defer reader.Close()

	c.Response().Header().Set("Content-Length", strconv.FormatInt(size, 10))
	return c.Stream(200, contentType, reader)
}
