package uow

import (
	"context"

	"loan-portal/internal/domain/admin"
	"loan-portal/internal/domain/enquiry"
	"loan-portal/internal/domain/loan"
)

// Repos are bound to one transaction.
type Repos struct {
	Loans     loan.Repository
	Enquiries enquiry.Repository
	Admins    admin.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
