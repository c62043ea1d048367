package contract

import (
	"context"

	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	// CreateWithinLimit inserts the note only while the tenant's note count
	// stays below maxNotes. Concurrent creates for the same tenant are
	// serialized on the tenant row, so the count is authoritative at insert
	// time. maxNotes < 0 means unlimited. Returns false when the ceiling
	// blocked the insert.
	CreateWithinLimit(ctx context.Context, note *entity.Note, maxNotes int) (bool, error)
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
