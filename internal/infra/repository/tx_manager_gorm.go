package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	carts        repo.CartRepository
	cartItems    repo.CartItemRepository
	products     repo.ProductRepository
	inventory    repo.InventoryRepository
	billings     repo.BillingRepository
	billingItems repo.BillingItemRepository
	users        repo.UserRepository
}

func (r *txReposGorm) Carts() repo.CartRepository               { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository       { return r.cartItems }
func (r *txReposGorm) Products() repo.ProductRepository         { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository      { return r.inventory }
func (r *txReposGorm) Billings() repo.BillingRepository         { return r.billings }
func (r *txReposGorm) BillingItems() repo.BillingItemRepository { return r.billingItems }
func (r *txReposGorm) Users() repo.UserRepository               { return r.users }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			carts:        NewCartGormRepository(tx),
			cartItems:    NewCartItemGormRepository(tx),
			products:     NewProductGormRepository(tx),
			inventory:    NewInventoryGormRepository(tx),
			billings:     NewBillingGormRepository(tx),
			billingItems: NewBillingItemGormRepository(tx),
			users:        NewUserGormRepository(tx),
		}
		return fn(r)
	})
}
