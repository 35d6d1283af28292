package adminmock

import (
	"context"

	domain "loan-portal/internal/domain/admin"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, a *domain.Admin) error
	GetByIDFn    func(ctx context.Context, id string) (*domain.Admin, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Admin, error)
	ListFn       func(ctx context.Context) ([]domain.Admin, error)
	CountFn      func(ctx context.Context) (int64, error)
	SaveFn       func(ctx context.Context, a *domain.Admin) error
	DeleteFn     func(ctx context.Context, id string) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Admin) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Admin, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Admin) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
