package enquiry

import (
	"context"

	"loan-portal/internal/domain/enquiry"
	"loan-portal/internal/domain/filter"
	"loan-portal/internal/validation"
	"loan-portal/pkg/id"
)

type Usecase struct{ repo enquiry.Repository }

func NewUsecase(r enquiry.Repository) *Usecase { return &Usecase{repo: r} }

type PageDTO struct {
	Enquiries    []enquiry.Enquiry `json:"enquiries"`
	CurrentPage  int               `json:"currentPage"`
	TotalPages   int               `json:"totalPages"`
	TotalEnquiry int64             `json:"totalEnquiry"`
}

func (u *Usecase) Create(ctx context.Context, in validation.EnquiryInput) (*enquiry.Enquiry, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}
	e := &enquiry.Enquiry{
		ID:      id.New(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		IsSeen:  in.IsSeen,
	}
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *Usecase) List(ctx context.Context, q filter.Query) (*PageDTO, error) {
	q = q.Normalize()
	rows, total, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []enquiry.Enquiry{}
	}
	return &PageDTO{
		Enquiries:    rows,
		CurrentPage:  q.Page,
		TotalPages:   filter.TotalPages(total, q.Limit),
		TotalEnquiry: total,
	}, nil
}

// Get returns the enquiry and marks it seen.
func (u *Usecase) Get(ctx context.Context, enquiryID string) (*enquiry.Enquiry, error) {
	e, err := u.repo.GetByID(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	if !e.IsSeen {
		if err := u.repo.MarkSeen(ctx, e.ID); err != nil {
			return nil, err
		}
		e.IsSeen = true
	}
	return e, nil
}

func (u *Usecase) Delete(ctx context.Context, enquiryID string) error {
	return u.repo.Delete(ctx, enquiryID)
}
