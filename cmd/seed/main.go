package main

import (
	"context"
	"log"

	"tenant-notes-be/internal/config"
	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/pkg/credentials"
	"tenant-notes-be/internal/repository/specification"
	"tenant-notes-be/internal/repository/unitofwork"
	"tenant-notes-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Demo seed: two FREE tenants with an admin and a member each, all sharing
// the password "password". Safe to run repeatedly.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	creds := credentials.NewService(cfg.Auth.JWTSecret, cfg.Auth.BcryptCost, cfg.Auth.TokenTTL)
	uowFactory := unitofwork.NewRepositoryFactory(db)

	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	passwordHash, err := creds.HashPassword("password")
	if err != nil {
		log.Fatal("Error: Failed to hash seed password:", err)
	}

	tenants := []struct {
		slug  string
		name  string
		users []struct {
			email string
			role  entity.UserRole
		}
	}{
		{
			slug: "acme",
			name: "Acme Corp",
			users: []struct {
				email string
				role  entity.UserRole
			}{
				{"admin@acme.test", entity.UserRoleAdmin},
				{"user@acme.test", entity.UserRoleMember},
			},
		},
		{
			slug: "globex",
			name: "Globex Corporation",
			users: []struct {
				email string
				role  entity.UserRole
			}{
				{"admin@globex.test", entity.UserRoleAdmin},
				{"user@globex.test", entity.UserRoleMember},
			},
		},
	}

	for _, t := range tenants {
		tenant, err := uow.TenantRepository().FindOne(ctx, specification.BySlug{Slug: t.slug})
		if err != nil {
			log.Fatalf("Error: tenant lookup failed: %v", err)
		}
		if tenant == nil {
			tenant = &entity.Tenant{
				Id:           uuid.New(),
				Slug:         t.slug,
				Name:         t.name,
				Subscription: entity.SubscriptionFree,
			}
			if err := uow.TenantRepository().Create(ctx, tenant); err != nil {
				log.Fatalf("Error: failed to create tenant %s: %v", t.slug, err)
			}
			color.Green("Created tenant %s (%s)", tenant.Name, tenant.Slug)
		}

		for _, u := range t.users {
			existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: u.email})
			if err != nil {
				log.Fatalf("Error: user lookup failed: %v", err)
			}
			if existing != nil {
				continue
			}
			user := &entity.User{
				Id:           uuid.New(),
				Email:        u.email,
				PasswordHash: passwordHash,
				Role:         u.role,
				TenantId:     tenant.Id,
			}
			if err := uow.UserRepository().Create(ctx, user); err != nil {
				log.Fatalf("Error: failed to create user %s: %v", u.email, err)
			}
			color.Green("Created user %s (%s)", user.Email, user.Role)
		}
	}

	color.Cyan("Database seeded. Test accounts use password \"password\".")
}
