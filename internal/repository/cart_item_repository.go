package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
}
