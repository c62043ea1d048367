package dto

import (
	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TenantDTO struct {
	Id           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Subscription string    `json:"subscription"`
}

type UserDTO struct {
	Id     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Tenant TenantDTO `json:"tenant"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// MeResponse echoes the verified token claims back to the caller.
type MeResponse struct {
	Id         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	TenantId   uuid.UUID `json:"tenant_id"`
	TenantSlug string    `json:"tenant_slug"`
}
