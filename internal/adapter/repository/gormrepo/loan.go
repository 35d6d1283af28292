package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loan-portal/internal/domain/filter"
	loanDomain "loan-portal/internal/domain/loan"
)

var loanSearchCols = []string{"name", "email", "phone", "aadhar_number"}

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (*loanDomain.Application, error) {
	var out loanDomain.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LoanRepository) List(ctx context.Context, q filter.Query) ([]loanDomain.Application, int64, error) {
	out := []loanDomain.Application{}
	total, err := list(r.db.WithContext(ctx), &loanDomain.Application{}, &out, q, loanSearchCols...)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *LoanRepository) MarkSeen(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&loanDomain.Application{}).
		Where("id = ?", id).
		Update("is_seen", true).Error
}

func (r *LoanRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&loanDomain.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrNotFound
	}
	return nil
}
