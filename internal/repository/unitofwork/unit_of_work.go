package unitofwork

import (
	"context"

	"tenant-notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TenantRepository() contract.TenantRepository
	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
}
