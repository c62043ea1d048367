package bootstrap

import (
	"tenant-notes-be/internal/config"
	"tenant-notes-be/internal/controller"
	"tenant-notes-be/internal/pkg/credentials"
	"tenant-notes-be/internal/pkg/logger"
	"tenant-notes-be/internal/repository/unitofwork"
	"tenant-notes-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	AuthController   controller.IAuthController
	NoteController   controller.INoteController
	TenantController controller.ITenantController

	Credentials *credentials.Service
	Logger      logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	creds := credentials.NewService(cfg.Auth.JWTSecret, cfg.Auth.BcryptCost, cfg.Auth.TokenTTL)

	// 2. Services
	authService := service.NewAuthService(uowFactory, creds)
	subscriptionService := service.NewSubscriptionService(uowFactory)
	noteService := service.NewNoteService(uowFactory, subscriptionService)
	tenantService := service.NewTenantService(uowFactory, subscriptionService)

	// 3. Controllers
	return &Container{
		AuthController:   controller.NewAuthController(authService),
		NoteController:   controller.NewNoteController(noteService),
		TenantController: controller.NewTenantController(tenantService),

		Credentials: creds,
		Logger:      sysLogger,
	}
}
