package serverutils

import (
	"strings"

	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/pkg/credentials"

	"github.com/gofiber/fiber/v2"
)

const localsIdentityKey = "identity"

// JwtMiddleware gates protected routes. It requires a `Bearer ` token in the
// Authorization header, verifies it through the credential service and
// attaches the decoded identity to the request context.
func JwtMiddleware(creds *credentials.Service) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Authorization header missing or invalid"))
		}

		identity := creds.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if identity == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
		}

		ctx.Locals(localsIdentityKey, identity)
		return ctx.Next()
	}
}

// RequireRoles composes on top of JwtMiddleware: the attached identity must
// hold one of the allowed roles.
func RequireRoles(roles ...entity.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identity := IdentityFromCtx(ctx)
		if identity == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Authentication required"))
		}
		for _, role := range roles {
			if identity.Role == string(role) {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Insufficient permissions"))
	}
}

// IdentityFromCtx returns the identity attached by JwtMiddleware, or nil when
// the request never passed authentication.
func IdentityFromCtx(ctx *fiber.Ctx) *credentials.Identity {
	identity, _ := ctx.Locals(localsIdentityKey).(*credentials.Identity)
	return identity
}
