package usecase

import (
	repo "app/internal/repository"
	"context"

	"app/internal/domain/model"
)

// CartUsecase はカートの業務ロジックです。
// 在庫はここでは減らさない（確定はチェックアウト側）。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartItemResponse struct {
	ID         int64 `json:"id"`
	ProductID  int64 `json:"product_id"`
	Quantity   int64 `json:"quantity"`
	PriceAtAdd int64 `json:"price_at_add"`
}

type CartResponse struct {
	CartID int64              `json:"cart_id"`
	Status string             `json:"status"`
	Items  []CartItemResponse `json:"items"`
}

type AddItemInput struct {
	ProductID int64
	Quantity  int64
}

// GetOrCreateCart はバイヤーのOPENカートを返す（無ければ作成）。
func (u *CartUsecase) GetOrCreateCart(ctx context.Context, buyerID int64) (CartResponse, error) {
	if buyerID <= 0 {
		return CartResponse{}, NewAppError(KindValidation, "invalid buyer_id")
	}

	cart, err := u.cartRepo.GetOrCreateOpenByBuyerID(ctx, buyerID)
	if err != nil {
		return CartResponse{}, NewAppError(KindInternal, "db error")
	}

	return u.buildCartResponse(ctx, cart)
}

// AddItem はカートに明細を追加。
// price_at_add は追加時点の商品価格で凍結する（後の値上げから買い手を守る）。
func (u *CartUsecase) AddItem(ctx context.Context, cartID int64, in AddItemInput) (CartItemResponse, error) {
	if cartID <= 0 {
		return CartItemResponse{}, NewAppError(KindValidation, "invalid cart_id")
	}
	if in.ProductID <= 0 {
		return CartItemResponse{}, NewAppError(KindValidation, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartItemResponse{}, NewAppError(KindValidation, "invalid quantity")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewAppError(KindNotFound, "cart not found")
	}
	if err != nil {
		return CartItemResponse{}, NewAppError(KindInternal, "db error")
	}
	//CHECKED_OUTには追加できない
	if cart.Status != model.CartStatusOpen {
		return CartItemResponse{}, NewAppError(KindConflict, "cart already checked out")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewAppError(KindNotFound, "product not found")
	}
	if err != nil {
		return CartItemResponse{}, NewAppError(KindInternal, "db error")
	}

	//追加時点の在庫チェック（確定時にもう一度チェックされる）
	if p.Stock < in.Quantity {
		return CartItemResponse{}, NewAppError(KindExhausted, "insufficient stock")
	}

	item, err := u.cartItemRepo.Create(ctx, model.CartItem{
		CartID:     cartID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		PriceAtAdd: p.Price,
	})
	if err != nil {
		return CartItemResponse{}, NewAppError(KindInternal, "db error")
	}

	return CartItemResponse{
		ID:         item.ID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		PriceAtAdd: item.PriceAtAdd,
	}, nil
}

// ViewCart はカートと明細を返す。副作用なし。
func (u *CartUsecase) ViewCart(ctx context.Context, cartID int64) (CartResponse, error) {
	if cartID <= 0 {
		return CartResponse{}, NewAppError(KindValidation, "invalid cart_id")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewAppError(KindNotFound, "cart not found")
	}
	if err != nil {
		return CartResponse{}, NewAppError(KindInternal, "db error")
	}

	return u.buildCartResponse(ctx, cart)
}

func (u *CartUsecase) buildCartResponse(ctx context.Context, cart model.Cart) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewAppError(KindInternal, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		respItems = append(respItems, CartItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			PriceAtAdd: it.PriceAtAdd,
		})
	}

	return CartResponse{
		CartID: cart.ID,
		Status: string(cart.Status),
		Items:  respItems,
	}, nil
}
