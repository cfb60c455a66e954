package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshare/internal/domain/entity"
	"bookshare/pkg/errors"
)

func newNoteFixture(t *testing.T) (*NoteUseCase, *fakeNoteRepo, *fakeFileMetaRepo, *fakeFileStore) {
	t.Helper()
	noteRepo := newFakeNoteRepo()
	fileMetaRepo := newFakeFileMetaRepo()
	fileStore := newFakeFileStore()
	return NewNoteUseCase(noteRepo, fileStore, fileMetaRepo), noteRepo, fileMetaRepo, fileStore
}

func seedUpload(t *testing.T, fileMetaRepo *fakeFileMetaRepo, fileStore *fakeFileStore, uploadedBy, objectName, content string) *entity.FileMetadata {
	t.Helper()
	fileStore.objects[objectName] = content
	meta := &entity.FileMetadata{
		URL:        "https://storage.example.com/" + objectName,
		ObjectName: objectName,
		UploadedBy: uploadedBy,
		FileType:   "application/pdf",
	}
	require.NoError(t, fileMetaRepo.Create(context.Background(), meta))
	return meta
}

func TestNoteCreateResolvesFileFromUpload(t *testing.T) {
	uc, _, fileMetaRepo, fileStore := newNoteFixture(t)

	meta := seedUpload(t, fileMetaRepo, fileStore, "author", "notes/physics.pdf", "chapter one")

	note, err := uc.Create(context.Background(), "author", CreateNoteInput{
		Title:   "Class 12 Physics",
		Subject: "physics",
		Class:   "12",
		FileID:  meta.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "author", note.AuthorID)
	assert.Equal(t, meta.URL, note.FileURL)
	assert.Equal(t, "notes/physics.pdf", note.ObjectName)
}

func TestNoteCreateRejectsForeignUpload(t *testing.T) {
	uc, _, fileMetaRepo, fileStore := newNoteFixture(t)

	meta := seedUpload(t, fileMetaRepo, fileStore, "someone-else", "notes/theirs.pdf", "their note")

	_, err := uc.Create(context.Background(), "author", CreateNoteInput{
		Title: "Stolen", Subject: "math", Class: "10", FileID: meta.ID,
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.Create(context.Background(), "author", CreateNoteInput{
		Title: "No file", Subject: "math", Class: "10",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestNoteDownloadStreamsOwnObjectOnly(t *testing.T) {
	uc, noteRepo, fileMetaRepo, fileStore := newNoteFixture(t)

	meta := seedUpload(t, fileMetaRepo, fileStore, "author", "notes/mine.pdf", "my note content")
	fileStore.objects["notes/private-other-user.pdf"] = "someone else's paid note"

	note, err := uc.Create(context.Background(), "author", CreateNoteInput{
		Title: "Mine", Subject: "math", Class: "10", FileID: meta.ID,
	})
	require.NoError(t, err)

	reader, contentType, size, err := uc.Download(context.Background(), note.ID)
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "my note content", string(got))
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, int64(len("my note content")), size)

	// A note with no stored object cannot be used to reach the bucket.
	bare := &entity.Note{Title: "bare", AuthorID: "author"}
	require.NoError(t, noteRepo.Create(context.Background(), bare))

	_, _, _, err = uc.Download(context.Background(), bare.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestNoteDeleteAuthorOnly(t *testing.T) {
	uc, _, fileMetaRepo, fileStore := newNoteFixture(t)

	meta := seedUpload(t, fileMetaRepo, fileStore, "author", "notes/mine.pdf", "content")
	note, err := uc.Create(context.Background(), "author", CreateNoteInput{
		Title: "Mine", Subject: "math", Class: "10", FileID: meta.ID,
	})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), "intruder", note.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.Delete(context.Background(), "author", note.ID))
	_, err = uc.GetByID(context.Background(), note.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
