package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/internal/domain/service"
	"bookshare/pkg/errors"
	"bookshare/pkg/response"
)

// Form field names route uploads to their folder and allowed content types.
var uploadFields = map[string]struct {
	folder string
	public bool
	allow  func(contentType string) bool
}{
	"bookImage": {
		folder: "books",
		public: true,
		allow:  func(ct string) bool { return strings.HasPrefix(ct, "image/") },
	},
	"noteFile": {
		folder: "notes",
		public: false,
		allow:  isDocumentType,
	},
	// Older clients send notesFile.
	"notesFile": {
		folder: "notes",
		public: false,
		allow:  isDocumentType,
	},
	"file": {
		folder: "uploads",
		public: false,
		allow:  func(ct string) bool { return strings.HasPrefix(ct, "image/") || isDocumentType(ct) },
	},
}

func isDocumentType(ct string) bool {
	switch ct {
	case "application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return true
	}
	return false
}

type UploadHandler struct {
	fileService    service.FileUploadService
	fileMetaRepo   repository.FileMetadataRepository
	maxUploadBytes int64
}

func NewUploadHandler(fileService service.FileUploadService, fileMetaRepo repository.FileMetadataRepository, maxUploadBytes int64) *UploadHandler {
	return &UploadHandler{
		fileService:    fileService,
		fileMetaRepo:   fileMetaRepo,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload accepts one multipart file under a known field name and stores it.
func (h *UploadHandler) Upload(c echo.Context) error {
	uid := c.Get("uid").(string)

	var fileHeader *multipart.FileHeader
	var field string
	var cfg struct {
		folder string
		public bool
		allow  func(contentType string) bool
	}

	for name, fc := range uploadFields {
		fh, err := c.FormFile(name)
		if err == nil {
			fileHeader = fh
			field = name
			cfg.folder, cfg.public, cfg.allow = fc.folder, fc.public, fc.allow
			break
		}
	}

	if fileHeader == nil {
		return response.Error(c, errors.BadRequest("No file provided; use bookImage, noteFile or file", nil))
	}

	if fileHeader.Size > h.maxUploadBytes {
		return response.Error(c, errors.BadRequest("File exceeds the upload size limit", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !cfg.allow(contentType) {
		return response.Error(c, errors.BadRequest("File type not allowed for this field", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	result, err := h.fileService.UploadFile(c.Request().Context(), src, contentType, fileHeader.Filename, cfg.folder, cfg.public)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store file", err))
	}

	metadata := &entity.FileMetadata{
		URL:        result.URL,
		ObjectName: result.ObjectName,
		Field:      field,
		EntityType: c.FormValue("entity_type"),
		EntityID:   c.FormValue("entity_id"),
		UploadedBy: uid,
		Filename:   fileHeader.Filename,
		FileType:   contentType,
		FileSize:   result.Size,
		IsPublic:   cfg.public,
	}

	if err := h.fileMetaRepo.Create(c.Request().Context(), metadata); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, metadata)
}

// Get streams a stored file. Private files are only served to their uploader.
func (h *UploadHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)

	metadata, err := h.fileMetaRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if !metadata.IsPublic && metadata.UploadedBy != uid {
		return response.Error(c, errors.Forbidden("You do not have access to this file", nil))
	}

	reader, contentType, size, err := h.fileService.GetFileContent(c.Request().Context(), metadata.ObjectName)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read stored file", err))
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(size, 10))
	return c.Stream(http.StatusOK, contentType, reader)
}

func (h *UploadHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	metadata, err := h.fileMetaRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if metadata.UploadedBy != uid {
		return response.Error(c, errors.Forbidden("Only the uploader can delete this file", nil))
	}

	if err := h.fileService.DeleteFile(c.Request().Context(), metadata.ObjectName); err != nil {
		return response.Error(c, errors.Internal("Failed to delete stored file", err))
	}

	if err := h.fileMetaRepo.Delete(c.Request().Context(), metadata.ID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "File deleted"})
}
