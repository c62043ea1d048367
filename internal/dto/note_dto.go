package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdateNoteRequest applies only the supplied fields; each is validated with
// the create-time constraints when present. Tenant and author are never
// mutable through an update.
type UpdateNoteRequest struct {
	Id      uuid.UUID `json:"-"`
	Title   *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Content *string   `json:"content" validate:"omitempty,min=1"`
}

type NoteAuthorDTO struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type NoteResponse struct {
	Id        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	TenantId  uuid.UUID     `json:"tenant_id"`
	Author    NoteAuthorDTO `json:"author"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type ListNotesResponse struct {
	Notes []*NoteResponse `json:"notes"`
}

type DeleteNoteResponse struct {
	Success bool `json:"success"`
}
