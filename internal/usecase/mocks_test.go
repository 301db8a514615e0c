package usecase

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	carts        repo.CartRepository
	cartItems    repo.CartItemRepository
	products     repo.ProductRepository
	inventory    repo.InventoryRepository
	billings     repo.BillingRepository
	billingItems repo.BillingItemRepository
	users        repo.UserRepository
}

func (r *TxReposMock) Carts() repo.CartRepository               { return r.carts }
func (r *TxReposMock) CartItems() repo.CartItemRepository       { return r.cartItems }
func (r *TxReposMock) Products() repo.ProductRepository         { return r.products }
func (r *TxReposMock) Inventory() repo.InventoryRepository      { return r.inventory }
func (r *TxReposMock) Billings() repo.BillingRepository         { return r.billings }
func (r *TxReposMock) BillingItems() repo.BillingItemRepository { return r.billingItems }
func (r *TxReposMock) Users() repo.UserRepository               { return r.users }

// =====================
// Repository mocks
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateOpenByBuyerID(ctx context.Context, buyerID int64) (model.Cart, error) {
	args := m.Called(ctx, buyerID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) MarkCheckedOut(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	args := m.Called(ctx, item)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListBySellerID(ctx context.Context, sellerID int64) ([]model.Product, error) {
	args := m.Called(ctx, sellerID)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) SetStock(ctx context.Context, productID int64, newStock int64) error {
	args := m.Called(ctx, productID, newStock)
	return args.Error(0)
}

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

type BillingRepoMock struct{ mock.Mock }

func (m *BillingRepoMock) Create(ctx context.Context, b model.Billing) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BillingRepoMock) FindByID(ctx context.Context, billingID int64) (model.Billing, error) {
	args := m.Called(ctx, billingID)
	b, _ := args.Get(0).(model.Billing)
	return b, args.Error(1)
}

func (m *BillingRepoMock) ListByCreatedAtRange(ctx context.Context, from time.Time, to time.Time) ([]model.Billing, error) {
	args := m.Called(ctx, from, to)
	bs, _ := args.Get(0).([]model.Billing)
	return bs, args.Error(1)
}

type BillingItemRepoMock struct{ mock.Mock }

func (m *BillingItemRepoMock) CreateBulk(ctx context.Context, billingID int64, items []model.BillingItem) error {
	args := m.Called(ctx, billingID, items)
	return args.Error(0)
}

func (m *BillingItemRepoMock) ListByBillingID(ctx context.Context, billingID int64) ([]model.BillingItem, error) {
	args := m.Called(ctx, billingID)
	items, _ := args.Get(0).([]model.BillingItem)
	return items, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(model.User)
	return created, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

// =====================
// 部品のフェイク
// =====================

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewID() string { return g.id }

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

// 保存を記録するだけのFileStore
type fileStoreFake struct {
	saved map[string][]byte
	err   error
}

func newFileStoreFake() *fileStoreFake {
	return &fileStoreFake{saved: map[string][]byte{}}
}

func (s *fileStoreFake) Save(name string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.saved[name] = data
	return nil
}

// 配置されたテキストと改ページを記録するDocument
type docFake struct {
	texts  []string
	ys     []float64
	pages  int
	finErr error
}

func (d *docFake) Text(x float64, y float64, s string) {
	d.texts = append(d.texts, s)
	d.ys = append(d.ys, y)
}
func (d *docFake) PageBreak()                          { d.pages++ }
func (d *docFake) Finalize() ([]byte, error) {
	if d.finErr != nil {
		return nil, d.finErr
	}
	return []byte("%PDF-fake"), nil
}
