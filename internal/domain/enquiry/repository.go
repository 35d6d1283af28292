package enquiry

import (
	"context"
	"errors"

	"loan-portal/internal/domain/filter"
)

var ErrNotFound = errors.New("enquiry not found")

type Repository interface {
	Create(ctx context.Context, e *Enquiry) error
	GetByID(ctx context.Context, id string) (*Enquiry, error)
	List(ctx context.Context, q filter.Query) ([]Enquiry, int64, error)
	MarkSeen(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
