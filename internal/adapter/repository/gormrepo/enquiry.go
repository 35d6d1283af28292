package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	enquiryDomain "loan-portal/internal/domain/enquiry"
	"loan-portal/internal/domain/filter"
)

var enquirySearchCols = []string{"name", "email", "phone", "subject", "message"}

type EnquiryRepository struct{ db *gorm.DB }

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository { return &EnquiryRepository{db: db} }

func (r *EnquiryRepository) Create(ctx context.Context, e *enquiryDomain.Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EnquiryRepository) GetByID(ctx context.Context, id string) (*enquiryDomain.Enquiry, error) {
	var out enquiryDomain.Enquiry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, enquiryDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *EnquiryRepository) List(ctx context.Context, q filter.Query) ([]enquiryDomain.Enquiry, int64, error) {
	out := []enquiryDomain.Enquiry{}
	total, err := list(r.db.WithContext(ctx), &enquiryDomain.Enquiry{}, &out, q, enquirySearchCols...)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *EnquiryRepository) MarkSeen(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&enquiryDomain.Enquiry{}).
		Where("id = ?", id).
		Update("is_seen", true).Error
}

func (r *EnquiryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&enquiryDomain.Enquiry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return enquiryDomain.ErrNotFound
	}
	return nil
}
