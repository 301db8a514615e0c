package repository

import (
	"context"

	"app/internal/domain/model"
)

type BillingItemRepository interface {
	CreateBulk(ctx context.Context, billingID int64, items []model.BillingItem) error
	ListByBillingID(ctx context.Context, billingID int64) ([]model.BillingItem, error)
}
