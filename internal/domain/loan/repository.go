package loan

import (
	"context"
	"errors"

	"loan-portal/internal/domain/filter"
)

var ErrNotFound = errors.New("loan application not found")

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	// List returns one page plus the total match count.
	List(ctx context.Context, q filter.Query) ([]Application, int64, error)
	MarkSeen(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
