package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	UserId    uuid.UUID
	TenantId  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	// Author is preloaded for display only; isolation is enforced by tenant.
	Author *User
}
