package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"loan-portal/internal/domain/admin"
	"loan-portal/internal/domain/enquiry"
	"loan-portal/internal/domain/loan"
	"loan-portal/internal/domain/uow"
)

// compile-time checks
var (
	_ loan.Repository    = (*LoanRepository)(nil)
	_ enquiry.Repository = (*EnquiryRepository)(nil)
	_ admin.Repository   = (*AdminRepository)(nil)
	_ uow.UnitOfWork     = (*GormUoW)(nil)
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Loans:     &LoanRepository{db: tx},
			Enquiries: &EnquiryRepository{db: tx},
			Admins:    &AdminRepository{db: tx},
		})
	})
}

// Migrate creates or updates the tables for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&loan.Application{}, &enquiry.Enquiry{}, &admin.Admin{})
}
