package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/pkg/errors"
)

type firestoreNoteRepository struct {
	client *firestore.Client
}

func NewFirestoreNoteRepository(client *firestore.Client) repository.NoteRepository {
	return &firestoreNoteRepository{
		client: client,
	}
}

func (r *firestoreNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	if note.ID == "" {
		doc := r.client.Collection("notes").NewDoc()
		note.ID = doc.ID
	}

	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	_, err := r.client.Collection("notes").Doc(note.ID).Set(ctx, note)
	if err != nil {
		return errors.Internal("Failed to create note", err)
	}

	return nil
}

func (r *firestoreNoteRepository) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	doc, err := r.client.Collection("notes").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Note", err)
		}
		return nil, errors.Internal("Failed to get note", err)
	}

	var note entity.Note
	if err := doc.DataTo(&note); err != nil {
		return nil, errors.Internal("Failed to parse note data", err)
	}

	return &note, nil
}

func (r *firestoreNoteRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Note, int64, error) {
	query := r.client.Collection("notes").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count notes", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var notes []*entity.Note

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate notes", err)
		}

		var note entity.Note
		if err := doc.DataTo(&note); err != nil {
			return nil, 0, errors.Internal("Failed to parse note data", err)
		}
		notes = append(notes, &note)
	}

	return notes, total, nil
}

func (r *firestoreNoteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("notes").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete note", err)
	}

	return nil
}

func (r *firestoreNoteRepository) IncrementDownloads(ctx context.Context, id string) error {
	_, err := r.client.Collection("notes").Doc(id).Update(ctx, []firestore.Update{
		{Path: "downloads", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment note downloads", err)
	}

	return nil
}
