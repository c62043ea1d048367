package service

import (
	"context"

	"tenant-notes-be/internal/dto"
	"tenant-notes-be/internal/pkg/apperror"
	"tenant-notes-be/internal/pkg/credentials"
	"tenant-notes-be/internal/repository/specification"
	"tenant-notes-be/internal/repository/unitofwork"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	creds      *credentials.Service
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, creds *credentials.Service) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		creds:      creds,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Unknown email and wrong password answer identically.
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Unauthenticated("invalid credentials")
	}

	if !s.creds.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperror.Unauthenticated("invalid credentials")
	}

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: user.TenantId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if tenant == nil {
		return nil, apperror.Unauthenticated("invalid credentials")
	}

	token, err := s.creds.IssueToken(credentials.Identity{
		UserId:     user.Id,
		Email:      user.Email,
		Role:       string(user.Role),
		TenantId:   tenant.Id,
		TenantSlug: tenant.Slug,
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserDTO{
			Id:    user.Id,
			Email: user.Email,
			Role:  string(user.Role),
			Tenant: dto.TenantDTO{
				Id:           tenant.Id,
				Slug:         tenant.Slug,
				Name:         tenant.Name,
				Subscription: string(tenant.Subscription),
			},
		},
	}, nil
}
