package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	GetOrCreateOpenByBuyerID(ctx context.Context, buyerID int64) (model.Cart, error)
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)

	// 行ロック付き取得。同一カートへの同時チェックアウトを直列化する。
	FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error)

	// OPENの行だけCHECKED_OUTへ更新。対象が無ければErrNotFound。
	MarkCheckedOut(ctx context.Context, cartID int64) error
}
