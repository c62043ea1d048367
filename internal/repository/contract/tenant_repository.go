package contract

import (
	"context"

	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	// SetSubscription mutates only the subscription column.
	SetSubscription(ctx context.Context, id uuid.UUID, plan entity.SubscriptionPlan) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tenant, error)
}
