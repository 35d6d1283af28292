package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "loan-portal/internal/domain/admin"
	"loan-portal/internal/domain/uow"
	"loan-portal/internal/validation"
	"loan-portal/pkg/id"
)

type Usecase struct {
	uow    uow.UnitOfWork
	repo   domain.Repository
	tokens *Tokens
}

func NewUsecase(u uow.UnitOfWork, r domain.Repository, t *Tokens) *Usecase {
	return &Usecase{uow: u, repo: r, tokens: t}
}

type LoginDTO struct {
	Token string        `json:"token"`
	Admin *domain.Admin `json:"admin"`
}

func hash(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (u *Usecase) Login(ctx context.Context, in validation.LoginInput) (*LoginDTO, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}
	a, err := u.repo.GetByEmail(ctx, in.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	tok, err := u.tokens.Issue(a)
	if err != nil {
		return nil, err
	}
	return &LoginDTO{Token: tok, Admin: a}, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.Admin, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Admin{}
	}
	return out, nil
}

func (u *Usecase) Create(ctx context.Context, in validation.AdminInput) (*domain.Admin, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}
	pw, err := hash(in.Password)
	if err != nil {
		return nil, err
	}
	a := &domain.Admin{
		ID:           id.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: pw,
		Role:         domain.Role(in.Role),
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Admins.GetByEmail(ctx, a.Email); err == nil {
			return domain.ErrConflict
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return r.Admins.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (u *Usecase) Update(ctx context.Context, adminID string, in validation.AdminUpdateInput) (*domain.Admin, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}
	var pw string
	if in.Password != "" {
		h, err := hash(in.Password)
		if err != nil {
			return nil, err
		}
		pw = h
	}

	var out *domain.Admin
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Admins.GetByID(ctx, adminID)
		if err != nil {
			return err
		}
		if !strings.EqualFold(a.Email, in.Email) {
			other, err := r.Admins.GetByEmail(ctx, in.Email)
			switch {
			case err == nil && other.ID != a.ID:
				return domain.ErrConflict
			case err != nil && !errors.Is(err, domain.ErrNotFound):
				return err
			}
		}
		a.Name = in.Name
		a.Email = in.Email
		a.Role = domain.Role(in.Role)
		if pw != "" {
			a.PasswordHash = pw
		}
		if err := r.Admins.Save(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Delete(ctx context.Context, adminID string) error {
	return u.repo.Delete(ctx, adminID)
}

// Seed creates the first ADMIN when the table is empty.
func (u *Usecase) Seed(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	n, err := u.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	a, err := u.Create(ctx, validation.AdminInput{
		Name: name, Email: email, Password: password, Role: string(domain.RoleAdmin),
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Printf("admin: seeded %s", a.Email)
	return nil
}
