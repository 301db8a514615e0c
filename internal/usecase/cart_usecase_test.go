package usecase

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartFixture() (*CartUsecase, *CartRepoMock, *CartItemRepoMock, *ProductRepoMock) {
	carts := new(CartRepoMock)
	cartItems := new(CartItemRepoMock)
	products := new(ProductRepoMock)
	return NewCartUsecase(carts, cartItems, products), carts, cartItems, products
}

func TestGetOrCreateCart_ReturnsOpenCart(t *testing.T) {
	uc, carts, cartItems, _ := newCartFixture()

	carts.On("GetOrCreateOpenByBuyerID", mock.Anything, int64(3)).
		Return(model.Cart{ID: 7, BuyerID: 3, Status: model.CartStatusOpen}, nil)
	cartItems.On("ListByCartID", mock.Anything, int64(7)).Return([]model.CartItem{}, nil)

	out, err := uc.GetOrCreateCart(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.CartID)
	assert.Equal(t, "OPEN", out.Status)
	assert.Empty(t, out.Items)
}

func TestAddItem_FreezesPriceAtAdd(t *testing.T) {
	uc, carts, cartItems, products := newCartFixture()

	carts.On("FindByID", mock.Anything, int64(7)).
		Return(model.Cart{ID: 7, BuyerID: 3, Status: model.CartStatusOpen}, nil)
	products.On("FindByID", mock.Anything, int64(100)).
		Return(model.Product{ID: 100, Price: 10, Stock: 5}, nil)
	//スナップショットは追加時点の価格
	cartItems.On("Create", mock.Anything, mock.MatchedBy(func(it model.CartItem) bool {
		return it.CartID == 7 && it.ProductID == 100 && it.Quantity == 2 && it.PriceAtAdd == 10
	})).Return(model.CartItem{ID: 1, CartID: 7, ProductID: 100, Quantity: 2, PriceAtAdd: 10}, nil)

	out, err := uc.AddItem(context.Background(), 7, AddItemInput{ProductID: 100, Quantity: 2})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.PriceAtAdd)
	cartItems.AssertExpectations(t)
}

func TestAddItem_CartClosed(t *testing.T) {
	uc, carts, cartItems, _ := newCartFixture()

	carts.On("FindByID", mock.Anything, int64(7)).
		Return(model.Cart{ID: 7, BuyerID: 3, Status: model.CartStatusCheckedOut}, nil)

	_, err := uc.AddItem(context.Background(), 7, AddItemInput{ProductID: 100, Quantity: 1})

	ae, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, KindConflict, ae.Kind)
	cartItems.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddItem_InsufficientStock(t *testing.T) {
	uc, carts, cartItems, products := newCartFixture()

	carts.On("FindByID", mock.Anything, int64(7)).
		Return(model.Cart{ID: 7, BuyerID: 3, Status: model.CartStatusOpen}, nil)
	products.On("FindByID", mock.Anything, int64(100)).
		Return(model.Product{ID: 100, Price: 10, Stock: 1}, nil)

	_, err := uc.AddItem(context.Background(), 7, AddItemInput{ProductID: 100, Quantity: 2})

	ae, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, KindExhausted, ae.Kind)
	cartItems.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	uc, _, _, _ := newCartFixture()

	_, err := uc.AddItem(context.Background(), 7, AddItemInput{ProductID: 100, Quantity: 0})

	ae, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, KindValidation, ae.Kind)
}

func TestAddItem_ProductNotFound(t *testing.T) {
	uc, carts, _, products := newCartFixture()

	carts.On("FindByID", mock.Anything, int64(7)).
		Return(model.Cart{ID: 7, BuyerID: 3, Status: model.CartStatusOpen}, nil)
	products.On("FindByID", mock.Anything, int64(100)).
		Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddItem(context.Background(), 7, AddItemInput{ProductID: 100, Quantity: 1})

	ae, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, ae.Kind)
}

func TestViewCart_ReadOnly(t *testing.T) {
	uc, carts, cartItems, _ := newCartFixture()

	carts.On("FindByID", mock.Anything, int64(7)).
		Return(model.Cart{ID: 7, BuyerID: 3, Status: model.CartStatusOpen}, nil)
	cartItems.On("ListByCartID", mock.Anything, int64(7)).Return([]model.CartItem{
		{ID: 1, CartID: 7, ProductID: 100, Quantity: 2, PriceAtAdd: 10},
	}, nil)

	out, err := uc.ViewCart(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(100), out.Items[0].ProductID)
}

func TestViewCart_NotFound(t *testing.T) {
	uc, carts, _, _ := newCartFixture()

	carts.On("FindByID", mock.Anything, int64(9)).Return(model.Cart{}, repo.ErrNotFound)

	_, err := uc.ViewCart(context.Background(), 9)

	ae, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, ae.Kind)
}
