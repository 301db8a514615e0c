package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type BillingItemGormRepository struct {
	db *gorm.DB
}

func NewBillingItemGormRepository(db *gorm.DB) *BillingItemGormRepository {
	return &BillingItemGormRepository{db: db}
}

// 明細を一括作成（チェックアウト時の固定バッチ）
func (r *BillingItemGormRepository) CreateBulk(ctx context.Context, billingID int64, items []model.BillingItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].BillingID = billingID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

func (r *BillingItemGormRepository) ListByBillingID(ctx context.Context, billingID int64) ([]model.BillingItem, error) {
	var items []model.BillingItem
	err := r.db.WithContext(ctx).Where("billing_id = ?", billingID).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.BillingItem{}, err
	}
	return items, nil
}
