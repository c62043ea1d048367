package controller

import (
	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/pkg/serverutils"
	"tenant-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITenantController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Upgrade(ctx *fiber.Ctx) error
}

type tenantController struct {
	tenantService service.ITenantService
}

func NewTenantController(tenantService service.ITenantService) ITenantController {
	return &tenantController{
		tenantService: tenantService,
	}
}

func (c *tenantController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/tenants")
	h.Post(":slug/upgrade", jwtMiddleware, serverutils.RequireRoles(entity.UserRoleAdmin), c.Upgrade)
}

func (c *tenantController) Upgrade(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)
	slug := ctx.Params("slug")

	res, err := c.tenantService.Upgrade(ctx.Context(), identity, slug)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tenant successfully upgraded to Pro", res))
}
