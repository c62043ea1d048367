package service

import (
	"context"

	"tenant-notes-be/internal/dto"
	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/pkg/apperror"
	"tenant-notes-be/internal/pkg/credentials"
	"tenant-notes-be/internal/repository/specification"
	"tenant-notes-be/internal/repository/unitofwork"
)

type ITenantService interface {
	Upgrade(ctx context.Context, identity *credentials.Identity, slug string) (*dto.UpgradeTenantResponse, error)
}

type tenantService struct {
	uowFactory          unitofwork.RepositoryFactory
	subscriptionService ISubscriptionService
}

func NewTenantService(uowFactory unitofwork.RepositoryFactory, subscriptionService ISubscriptionService) ITenantService {
	return &tenantService{
		uowFactory:          uowFactory,
		subscriptionService: subscriptionService,
	}
}

// Upgrade moves the caller's own tenant FREE -> PRO. The role gate runs in
// the middleware; the slug check here stops an admin of tenant A from
// upgrading tenant B.
func (s *tenantService) Upgrade(ctx context.Context, identity *credentials.Identity, slug string) (*dto.UpgradeTenantResponse, error) {
	if identity.TenantSlug != slug {
		return nil, apperror.Forbidden("TENANT_MISMATCH", "cannot upgrade other tenants")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if tenant == nil {
		return nil, apperror.NotFound("TENANT_NOT_FOUND", "tenant not found")
	}

	if tenant.Subscription == entity.SubscriptionPro {
		return nil, apperror.Conflict("ALREADY_UPGRADED", "tenant is already on the Pro plan")
	}

	if err := s.subscriptionService.Upgrade(ctx, tenant.Id); err != nil {
		return nil, err
	}

	refreshed, err := uow.TenantRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.UpgradeTenantResponse{
		Tenant: dto.TenantDTO{
			Id:           refreshed.Id,
			Slug:         refreshed.Slug,
			Name:         refreshed.Name,
			Subscription: string(refreshed.Subscription),
		},
	}, nil
}
