package service

import (
	"context"
	"sort"
	"time"

	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/repository/contract"
	"tenant-notes-be/internal/repository/specification"
	"tenant-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories for service tests. They interpret the small set of
// specifications the services actually use.

type fakeStore struct {
	tenants map[uuid.UUID]*entity.Tenant
	users   map[uuid.UUID]*entity.User
	notes   map[uuid.UUID]*entity.Note
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tenants: make(map[uuid.UUID]*entity.Tenant),
		users:   make(map[uuid.UUID]*entity.User),
		notes:   make(map[uuid.UUID]*entity.Note),
	}
}

func (s *fakeStore) addTenant(slug string, plan entity.SubscriptionPlan) *entity.Tenant {
	t := &entity.Tenant{
		Id:           uuid.New(),
		Slug:         slug,
		Name:         slug,
		Subscription: plan,
		CreatedAt:    time.Now(),
	}
	s.tenants[t.Id] = t
	return t
}

func (s *fakeStore) addUser(email string, role entity.UserRole, tenantId uuid.UUID, passwordHash string) *entity.User {
	u := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		TenantId:     tenantId,
		CreatedAt:    time.Now(),
	}
	s.users[u.Id] = u
	return u
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) TenantRepository() contract.TenantRepository {
	return &fakeTenantRepo{store: u.store}
}

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{store: u.store}
}

// overrideNoteRepo intercepts selected note repository calls and delegates
// the rest, so a test can stage what a concurrent writer would leave behind.
type overrideNoteRepo struct {
	contract.NoteRepository
	createWithinLimit func(ctx context.Context, note *entity.Note, maxNotes int) (bool, error)
	findOne           func(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	update            func(ctx context.Context, note *entity.Note) error
}

func (r *overrideNoteRepo) CreateWithinLimit(ctx context.Context, note *entity.Note, maxNotes int) (bool, error) {
	if r.createWithinLimit != nil {
		return r.createWithinLimit(ctx, note, maxNotes)
	}
	return r.NoteRepository.CreateWithinLimit(ctx, note, maxNotes)
}

func (r *overrideNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	if r.findOne != nil {
		return r.findOne(ctx, specs...)
	}
	return r.NoteRepository.FindOne(ctx, specs...)
}

func (r *overrideNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	if r.update != nil {
		return r.update(ctx, note)
	}
	return r.NoteRepository.Update(ctx, note)
}

type overrideFactory struct {
	inner unitofwork.RepositoryFactory
	notes *overrideNoteRepo
}

func (f *overrideFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &overrideUow{inner: f.inner.NewUnitOfWork(ctx), notes: f.notes}
}

type overrideUow struct {
	inner unitofwork.UnitOfWork
	notes *overrideNoteRepo
}

func (u *overrideUow) Begin(ctx context.Context) error { return u.inner.Begin(ctx) }
func (u *overrideUow) Commit() error                   { return u.inner.Commit() }
func (u *overrideUow) Rollback() error                 { return u.inner.Rollback() }

func (u *overrideUow) TenantRepository() contract.TenantRepository {
	return u.inner.TenantRepository()
}

func (u *overrideUow) UserRepository() contract.UserRepository {
	return u.inner.UserRepository()
}

func (u *overrideUow) NoteRepository() contract.NoteRepository {
	repo := *u.notes
	repo.NoteRepository = u.inner.NoteRepository()
	return &repo
}

// Tenant repository

type fakeTenantRepo struct {
	store *fakeStore
}

func (r *fakeTenantRepo) Create(ctx context.Context, tenant *entity.Tenant) error {
	cp := *tenant
	r.store.tenants[tenant.Id] = &cp
	return nil
}

func (r *fakeTenantRepo) SetSubscription(ctx context.Context, id uuid.UUID, plan entity.SubscriptionPlan) error {
	if t, ok := r.store.tenants[id]; ok {
		t.Subscription = plan
	}
	return nil
}

func (r *fakeTenantRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tenant, error) {
	for _, t := range r.store.tenants {
		if tenantMatches(t, specs) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func tenantMatches(t *entity.Tenant, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if t.Id != sp.ID {
				return false
			}
		case specification.BySlug:
			if t.Slug != sp.Slug {
				return false
			}
		}
	}
	return true
}

// User repository

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	r.store.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			count++
		}
	}
	return count, nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		case specification.TenantOwnedBy:
			if u.TenantId != sp.TenantID {
				return false
			}
		}
	}
	return true
}

// Note repository

type fakeNoteRepo struct {
	store *fakeStore
}

func (r *fakeNoteRepo) withAuthor(n *entity.Note) *entity.Note {
	cp := *n
	if author, ok := r.store.users[n.UserId]; ok {
		authorCp := *author
		cp.Author = &authorCp
	}
	return &cp
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	cp := *note
	cp.Author = nil
	r.store.notes[note.Id] = &cp
	return nil
}

func (r *fakeNoteRepo) CreateWithinLimit(ctx context.Context, note *entity.Note, maxNotes int) (bool, error) {
	if maxNotes >= 0 {
		count, _ := r.Count(ctx, specification.TenantOwnedBy{TenantID: note.TenantId})
		if int(count) >= maxNotes {
			return false, nil
		}
	}
	return true, r.Create(ctx, note)
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	cp := *note
	cp.Author = nil
	r.store.notes[note.Id] = &cp
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.notes, id)
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			return r.withAuthor(n), nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var result []*entity.Note
	var orderDesc bool
	for _, s := range specs {
		if ob, ok := s.(specification.OrderBy); ok && ob.Field == "created_at" {
			orderDesc = ob.Desc
		}
	}
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			result = append(result, r.withAuthor(n))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if orderDesc {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			count++
		}
	}
	return count, nil
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if n.Id != sp.ID {
				return false
			}
		case specification.TenantOwnedBy:
			if n.TenantId != sp.TenantID {
				return false
			}
		}
	}
	return true
}
