package gormrepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	adminDomain "loan-portal/internal/domain/admin"
)

type AdminRepository struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) *AdminRepository { return &AdminRepository{db: db} }

func (r *AdminRepository) Create(ctx context.Context, a *adminDomain.Admin) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return adminDomain.ErrConflict
	}
	return err
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*adminDomain.Admin, error) {
	var out adminDomain.Admin
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, adminDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByEmail matches case-insensitively.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*adminDomain.Admin, error) {
	var out adminDomain.Admin
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, adminDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]adminDomain.Admin, error) {
	out := []adminDomain.Admin{}
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&adminDomain.Admin{}).Count(&n).Error
	return n, err
}

func (r *AdminRepository) Save(ctx context.Context, a *adminDomain.Admin) error {
	err := r.db.WithContext(ctx).Save(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return adminDomain.ErrConflict
	}
	return err
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&adminDomain.Admin{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return adminDomain.ErrNotFound
	}
	return nil
}
