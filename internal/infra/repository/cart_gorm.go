package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// バイヤーのOPENカートを取得し、無ければ作成。
// 「OPENは1バイヤー1つ」は carts(buyer_id) WHERE status='OPEN' の
// 部分一意インデックスで担保する（db.Migrate参照）。
// 同時作成で負けた側のINSERTは一意違反で落ちるので、
// 失敗したトランザクションの外で勝った行を読み直す。
func (r *CartGormRepository) GetOrCreateOpenByBuyerID(ctx context.Context, buyerID int64) (model.Cart, error) {
	cart, err := r.findOpenByBuyerID(ctx, buyerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, err
	}

	// 無ければ作る
	now := time.Now()
	newCart := model.Cart{
		BuyerID:   buyerID,
		Status:    model.CartStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	createErr := r.db.WithContext(ctx).Create(&newCart).Error
	if createErr == nil {
		return newCart, nil
	}

	//同時作成の負けた側はもう一度探す
	cart, err = r.findOpenByBuyerID(ctx, buyerID)
	if err == nil {
		return cart, nil
	}
	return model.Cart{}, createErr
}

func (r *CartGormRepository) findOpenByBuyerID(ctx context.Context, buyerID int64) (model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Where("buyer_id = ? AND status = ?", buyerID, model.CartStatusOpen).
		Order("id desc").
		First(&cart).Error
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// IDでカートを取得
func (r *CartGormRepository) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("id = ?", cartID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 行ロック付きで取得（SELECT ... FOR UPDATE）
// チェックアウトはこの行ロックで直列化する。
func (r *CartGormRepository) FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", cartID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// OPENの行だけCHECKED_OUTへ更新
func (r *CartGormRepository) MarkCheckedOut(ctx context.Context, cartID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ? AND status = ?", cartID, model.CartStatusOpen).
		Update("status", model.CartStatusCheckedOut)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
