package admin

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("admin not found")
	ErrConflict           = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, a *Admin) error
	Delete(ctx context.Context, id string) error
}
