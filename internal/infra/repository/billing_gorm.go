package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type BillingGormRepository struct {
	db *gorm.DB
}

func NewBillingGormRepository(db *gorm.DB) *BillingGormRepository {
	return &BillingGormRepository{db: db}
}

func (r *BillingGormRepository) Create(ctx context.Context, b model.Billing) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		return 0, err
	}
	return b.ID, nil
}

func (r *BillingGormRepository) FindByID(ctx context.Context, billingID int64) (model.Billing, error) {
	var b model.Billing
	err := r.db.WithContext(ctx).Where("id = ?", billingID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Billing{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Billing{}, err
	}
	return b, nil
}

// 期間絞り込み（両端含む）
func (r *BillingGormRepository) ListByCreatedAtRange(ctx context.Context, from time.Time, to time.Time) ([]model.Billing, error) {
	var items []model.Billing

	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Billing{}, err
	}

	return items, nil
}
