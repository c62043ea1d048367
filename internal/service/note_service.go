package service

import (
	"context"
	"errors"
	"time"

	"tenant-notes-be/internal/dto"
	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/pkg/apperror"
	"tenant-notes-be/internal/repository/specification"
	"tenant-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context, tenantId uuid.UUID) (*dto.ListNotesResponse, error)
	Create(ctx context.Context, tenantId, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, tenantId, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, tenantId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, tenantId, id uuid.UUID) error
}

type noteService struct {
	uowFactory          unitofwork.RepositoryFactory
	subscriptionService ISubscriptionService
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, subscriptionService ISubscriptionService) INoteService {
	return &noteService{
		uowFactory:          uowFactory,
		subscriptionService: subscriptionService,
	}
}

func (s *noteService) List(ctx context.Context, tenantId uuid.UUID) (*dto.ListNotesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		res[i] = toNoteResponse(note)
	}
	return &dto.ListNotesResponse{Notes: res}, nil
}

func (s *noteService) Create(ctx context.Context, tenantId, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Pre-check shapes the limit payload; the row-locked create below is
	// what actually enforces the ceiling under concurrency.
	status, err := s.subscriptionService.CheckNoteLimit(ctx, tenantId)
	if err != nil {
		return nil, err
	}
	if !status.Allowed {
		return nil, apperror.LimitExceeded(status.CurrentCount, status.MaxNotes, status.Subscription)
	}

	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		UserId:    userId,
		TenantId:  tenantId,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	inserted, err := uow.NoteRepository().CreateWithinLimit(ctx, &note, status.MaxNotes)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !inserted {
		// A concurrent create took the last slot between check and insert.
		return nil, apperror.LimitExceeded(status.MaxNotes, status.MaxNotes, status.Subscription)
	}

	created, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: note.Id},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if created == nil {
		return nil, apperror.Internal(errors.New("created note missing on re-fetch"))
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}
	return toNoteResponse(created), nil
}

func (s *noteService) Show(ctx context.Context, tenantId, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if note == nil {
		// Same answer whether the note is absent or lives in another tenant.
		return nil, apperror.NotFound("NOTE_NOT_FOUND", "note not found")
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, tenantId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if note == nil {
		return nil, apperror.NotFound("NOTE_NOT_FOUND", "note not found")
	}

	// Only supplied fields change; tenant and author never do.
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	note.UpdatedAt = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperror.Internal(err)
	}

	updated, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: note.Id},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if updated == nil {
		// A concurrent delete can win between the save and this re-fetch.
		return nil, apperror.NotFound("NOTE_NOT_FOUND", "note not found")
	}
	return toNoteResponse(updated), nil
}

func (s *noteService) Delete(ctx context.Context, tenantId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if note == nil {
		return apperror.NotFound("NOTE_NOT_FOUND", "note not found")
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	res := &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		TenantId:  note.TenantId,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if note.Author != nil {
		res.Author = dto.NoteAuthorDTO{
			Id:    note.Author.Id,
			Email: note.Author.Email,
			Role:  string(note.Author.Role),
		}
	}
	return res
}
