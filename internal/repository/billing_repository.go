package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type BillingRepository interface {
	Create(ctx context.Context, b model.Billing) (int64, error)
	FindByID(ctx context.Context, billingID int64) (model.Billing, error)

	// created_at が [from, to] に入るもの（両端含む）
	ListByCreatedAtRange(ctx context.Context, from time.Time, to time.Time) ([]model.Billing, error)
}
