package loan

import (
	"context"
	"log"
	"time"

	"loan-portal/internal/domain/filter"
	"loan-portal/internal/domain/loan"
	"loan-portal/internal/validation"
	"loan-portal/pkg/id"
)

const notifyTimeout = 10 * time.Second

// Notifier tells the applicant their request arrived.
type Notifier interface {
	LoanReceived(ctx context.Context, a *loan.Application) error
}

type Usecase struct {
	repo   loan.Repository
	notify Notifier
}

func NewUsecase(r loan.Repository, n Notifier) *Usecase { return &Usecase{repo: r, notify: n} }

type PageDTO struct {
	LoanApplications []loan.Application `json:"loanApplications"`
	CurrentPage      int                `json:"currentPage"`
	TotalPages       int                `json:"totalPages"`
	TotalCount       int64              `json:"totalCount"`
}

func (u *Usecase) Create(ctx context.Context, in validation.LoanApplicationInput) (*loan.Application, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}
	a := &loan.Application{
		ID:           id.New(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		LoanType:     in.LoanType,
		Amount:       in.Amount,
		Duration:     in.Duration,
		AadharNumber: in.AadharNumber,
		IsSeen:       in.IsSeen,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	if u.notify != nil {
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
		if err := u.notify.LoanReceived(nctx, a); err != nil {
			log.Printf("loan %s: confirmation mail failed: %v", a.ID, err)
		}
	}
	return a, nil
}

func (u *Usecase) List(ctx context.Context, q filter.Query) (*PageDTO, error) {
	q = q.Normalize()
	rows, total, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []loan.Application{}
	}
	return &PageDTO{
		LoanApplications: rows,
		CurrentPage:      q.Page,
		TotalPages:       filter.TotalPages(total, q.Limit),
		TotalCount:       total,
	}, nil
}

// Get returns the application and marks it seen.
func (u *Usecase) Get(ctx context.Context, appID string) (*loan.Application, error) {
	a, err := u.repo.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if !a.IsSeen {
		if err := u.repo.MarkSeen(ctx, a.ID); err != nil {
			return nil, err
		}
		a.IsSeen = true
	}
	return a, nil
}

func (u *Usecase) Delete(ctx context.Context, appID string) error {
	return u.repo.Delete(ctx, appID)
}
