package implementation

import (
	"context"
	"errors"
	"time"

	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/mapper"
	"tenant-notes-be/internal/model"
	"tenant-notes-be/internal/repository/contract"
	"tenant-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

// CreateWithinLimit enforces the plan ceiling by serializing creates for
// one tenant on its row lock. A bare conditional insert is not enough:
// under READ COMMITTED two overlapping statements both count before either
// commits, and both pass at the ceiling.
func (r *NoteRepositoryImpl) CreateWithinLimit(ctx context.Context, note *entity.Note, maxNotes int) (bool, error) {
	if maxNotes < 0 {
		return true, r.Create(ctx, note)
	}

	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	inserted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Concurrent creates for this tenant queue on the lock; once it is
		// held, the count sees every committed insert.
		var lockedId uuid.UUID
		if err := tx.Raw(`SELECT id FROM tenants WHERE id = ? FOR UPDATE`, note.TenantId).
			Scan(&lockedId).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Note{}).
			Where("tenant_id = ?", note.TenantId).
			Count(&count).Error; err != nil {
			return err
		}
		if int(count) >= maxNotes {
			return nil
		}

		m := r.mapper.ToModel(note)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		*note = *r.mapper.ToEntity(m)
		inserted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Author"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Author"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
