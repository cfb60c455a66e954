package usecase

import (
	"context"
	"io"
	"time"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/internal/domain/service"
	"bookshare/pkg/errors"
	"bookshare/pkg/logger"
)

type NoteUseCase struct {
	noteRepo     repository.NoteRepository
	fileService  service.FileUploadService
	fileMetaRepo repository.FileMetadataRepository
}

func NewNoteUseCase(noteRepo repository.NoteRepository, fileService service.FileUploadService, fileMetaRepo repository.FileMetadataRepository) *NoteUseCase {
	return &NoteUseCase{
		noteRepo:     noteRepo,
		fileService:  fileService,
		fileMetaRepo: fileMetaRepo,
	}
}

type CreateNoteInput struct {
	Title       string
	Subject     string
	Class       string
	Board       string
	Description string
	Price       float64
	Pages       int
	FileID      string
}

// Create publishes a note backed by a file the author uploaded earlier. The
// file reference is resolved through its stored metadata so a note can only
// ever point at its author's own upload.
func (uc *NoteUseCase) Create(ctx context.Context, authorID string, input CreateNoteInput) (*entity.Note, error) {
	if input.FileID == "" {
		return nil, errors.BadRequest("Notes require an uploaded file", nil)
	}

	file, err := uc.fileMetaRepo.GetByID(ctx, input.FileID)
	if err != nil {
		return nil, err
	}
	if file.UploadedBy != authorID {
		return nil, errors.Forbidden("You can only attach your own uploads", nil)
	}

	note := &entity.Note{
		Title:       input.Title,
		Subject:     input.Subject,
		Class:       input.Class,
		Board:       input.Board,
		Description: input.Description,
		Price:       input.Price,
		Pages:       input.Pages,
		FileURL:     file.URL,
		ObjectName:  file.ObjectName,
		AuthorID:    authorID,
	}

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (uc *NoteUseCase) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	return uc.noteRepo.GetByID(ctx, id)
}

func (uc *NoteUseCase) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Note, int64, error) {
	return uc.noteRepo.List(ctx, filter, limit, offset)
}

func (uc *NoteUseCase) Delete(ctx context.Context, userID, noteID string) error {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}

	if note.AuthorID != userID {
		return errors.Forbidden("Only the author can delete this note", nil)
	}

	return uc.noteRepo.Delete(ctx, noteID)
}

// Download streams the note's own stored file and bumps the download counter
// off the request path.
func (uc *NoteUseCase) Download(ctx context.Context, noteID string) (io.ReadCloser, string, int64, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, "", 0, err
	}
	if note.ObjectName == "" {
		return nil, "", 0, errors.NotFound("Note file", nil)
	}

	reader, contentType, size, err := uc.fileService.GetFileContent(ctx, note.ObjectName)
	if err != nil {
		return nil, "", 0, errors.Internal("Failed to fetch note file", err)
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.noteRepo.IncrementDownloads(bgCtx, noteID); err != nil {
			logger.Error("Failed to count download for note %s: %v", noteID, err)
		}
	}()

	return reader, contentType, size, nil
}
