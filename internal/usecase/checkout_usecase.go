package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// IDGenerator は衝突しない識別子を返す（本番はUUID）。
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// CheckoutUsecase はOPENカートを請求レコードへ確定する。
// 在庫減算・請求作成・カートのクローズは1トランザクションで、
// どれか失敗したら全部巻き戻す。
type CheckoutUsecase struct {
	tx      repo.TransactionManager
	idGen   IDGenerator
	clock   Clock
	timeout time.Duration
}

func NewCheckoutUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock, timeout time.Duration) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, idGen: idGen, clock: clock, timeout: timeout}
}

type BillingItemOutput struct {
	ProductID  int64 `json:"product_id"`
	Quantity   int64 `json:"quantity"`
	PriceEach  int64 `json:"price_each"`
	TotalPrice int64 `json:"total_price"`
}

type BillingOutput struct {
	ID            int64               `json:"id"`
	CartID        int64               `json:"cart_id"`
	BuyerID       int64               `json:"buyer_id"`
	TotalAmount   int64               `json:"total_amount"`
	InvoiceNumber string              `json:"invoice_number"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []BillingItemOutput `json:"items"`
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, cartID int64) (BillingOutput, error) {
	if cartID <= 0 {
		return BillingOutput{}, NewAppError(KindValidation, "invalid cart_id")
	}

	//締め切り。超過したらトランザクションごとロールバックされる。
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	var out BillingOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//行ロック付きで取得。同じカートへの同時チェックアウトはここで直列化され、
		//2本目以降はCHECKED_OUTを観測して競合で返る。
		cart, err := r.Carts().FindByIDForUpdate(ctx, cartID)
		if err == repo.ErrNotFound {
			return NewAppError(KindNotFound, "cart not found")
		}
		if err != nil {
			return NewAppError(KindInternal, "db error")
		}
		if cart.Status == model.CartStatusCheckedOut {
			return NewAppError(KindConflict, "cart already checked out")
		}

		items, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewAppError(KindInternal, "db error")
		}
		if len(items) == 0 {
			return NewAppError(KindValidation, "cart is empty")
		}

		//合計は追加時点の凍結価格で計算（現在価格ではない）
		var total int64 = 0
		for _, it := range items {
			total += it.Quantity * it.PriceAtAdd
		}

		now := u.clock.Now()
		invoiceNo := u.newInvoiceNumber(now)

		//在庫を確定時に再チェックして減らす。
		//足りない商品が1つでもあれば全体が失敗してロールバック。
		billingItems := make([]model.BillingItem, 0, len(items))
		for _, it := range items {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return NewAppError(KindInternal, "db error")
			}
			if !ok {
				return NewAppError(KindExhausted, "insufficient stock")
			}

			billingItems = append(billingItems, model.BillingItem{
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				PriceEach:  it.PriceAtAdd,
				TotalPrice: it.Quantity * it.PriceAtAdd,
				CreatedAt:  now,
			})
		}

		billingID, err := r.Billings().Create(ctx, model.Billing{
			CartID:        cart.ID,
			BuyerID:       cart.BuyerID,
			TotalAmount:   total,
			InvoiceNumber: invoiceNo,
			CreatedAt:     now,
		})
		if err != nil {
			return NewAppError(KindInternal, "db error")
		}

		if err := r.BillingItems().CreateBulk(ctx, billingID, billingItems); err != nil {
			return NewAppError(KindInternal, "db error")
		}

		//OPENの行だけ更新。ロック下なので通常ここでは外れない。
		if err := r.Carts().MarkCheckedOut(ctx, cart.ID); err != nil {
			if err == repo.ErrNotFound {
				return NewAppError(KindConflict, "cart already checked out")
			}
			return NewAppError(KindInternal, "db error")
		}

		out = BillingOutput{
			ID:            billingID,
			CartID:        cart.ID,
			BuyerID:       cart.BuyerID,
			TotalAmount:   total,
			InvoiceNumber: invoiceNo,
			CreatedAt:     now,
			Items:         toBillingItemOutputs(billingItems),
		}
		return nil
	})

	if err != nil {
		return BillingOutput{}, err
	}
	return out, nil
}

// INV-<ミリ秒>-<UUID先頭8桁>
// 時刻だけだと同一瞬間の競合で衝突するのでUUIDを足す。
// billings.invoice_number の一意インデックスが最後の砦。
func (u *CheckoutUsecase) newInvoiceNumber(now time.Time) string {
	suffix := strings.ReplaceAll(u.idGen.NewID(), "-", "")
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("INV-%d-%s", now.UnixMilli(), suffix)
}

func toBillingItemOutputs(items []model.BillingItem) []BillingItemOutput {
	outs := make([]BillingItemOutput, 0, len(items))
	for _, it := range items {
		outs = append(outs, BillingItemOutput{
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			PriceEach:  it.PriceEach,
			TotalPrice: it.TotalPrice,
		})
	}
	return outs
}
