// Service answering "may tenant T create one more note" and owning the
// single FREE -> PRO plan transition at the data layer.
package service

import (
	"context"

	"tenant-notes-be/internal/dto"
	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/pkg/apperror"
	"tenant-notes-be/internal/repository/specification"
	"tenant-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	CheckNoteLimit(ctx context.Context, tenantId uuid.UUID) (*dto.NoteLimitStatus, error)
	Upgrade(ctx context.Context, tenantId uuid.UUID) error
}

type subscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory) ISubscriptionService {
	return &subscriptionService{
		uowFactory: uowFactory,
	}
}

// CheckNoteLimit reports the tenant's position against its plan ceiling.
// The answer can go stale under concurrent creates; the note repository's
// row-locked create is the enforcement of record.
func (s *subscriptionService) CheckNoteLimit(ctx context.Context, tenantId uuid.UUID) (*dto.NoteLimitStatus, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: tenantId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if tenant == nil {
		return nil, apperror.NotFound("TENANT_NOT_FOUND", "tenant not found")
	}

	count, err := uow.NoteRepository().Count(ctx, specification.TenantOwnedBy{TenantID: tenantId})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	maxNotes := tenant.Subscription.MaxNotes()
	return &dto.NoteLimitStatus{
		Allowed:      maxNotes < 0 || int(count) < maxNotes,
		CurrentCount: int(count),
		MaxNotes:     maxNotes,
		Subscription: string(tenant.Subscription),
	}, nil
}

// Upgrade sets the subscription to PRO unconditionally. Idempotent here;
// the controller layer rejects redundant upgrades.
func (s *subscriptionService) Upgrade(ctx context.Context, tenantId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TenantRepository().SetSubscription(ctx, tenantId, entity.SubscriptionPro); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
