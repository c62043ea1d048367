package controller

import (
	"tenant-notes-be/internal/dto"
	"tenant-notes-be/internal/pkg/serverutils"
	"tenant-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Get("/me", jwtMiddleware, c.Me)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	return ctx.JSON(serverutils.SuccessResponse("Authenticated user", dto.MeResponse{
		Id:         identity.UserId,
		Email:      identity.Email,
		Role:       identity.Role,
		TenantId:   identity.TenantId,
		TenantSlug: identity.TenantSlug,
	}))
}
