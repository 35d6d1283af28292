package enquirymock

import (
	"context"

	domain "loan-portal/internal/domain/enquiry"
	"loan-portal/internal/domain/filter"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn   func(ctx context.Context, e *domain.Enquiry) error
	GetByIDFn  func(ctx context.Context, id string) (*domain.Enquiry, error)
	ListFn     func(ctx context.Context, q filter.Query) ([]domain.Enquiry, int64, error)
	MarkSeenFn func(ctx context.Context, id string) error
	DeleteFn   func(ctx context.Context, id string) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Enquiry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, q filter.Query) ([]domain.Enquiry, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return nil, 0, nil
}

func (m *Repo) MarkSeen(ctx context.Context, id string) error {
	if m.MarkSeenFn != nil {
		return m.MarkSeenFn(ctx, id)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
