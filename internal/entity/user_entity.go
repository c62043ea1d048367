package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	Role         UserRole
	TenantId     uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
