package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// Document は帳票レンダラの抽象。
// 指定位置に文字を置く・改ページする・バイト列に固める、の3つだけ。
type Document interface {
	Text(x float64, y float64, s string)
	PageBreak()
	Finalize() ([]byte, error)
}

// FileStore はエクスポート結果の保存先。
type FileStore interface {
	Save(name string, data []byte) error
}

// ReportUsecase は請求データからCSV/PDFの読み取り専用ビューを作る。
type ReportUsecase struct {
	tx     repo.TransactionManager
	files  FileStore
	newDoc func() Document
}

func NewReportUsecase(tx repo.TransactionManager, files FileStore, newDoc func() Document) *ReportUsecase {
	return &ReportUsecase{tx: tx, files: files, newDoc: newDoc}
}

// 帳票レイアウト（pt）。行の高さは固定なので、改ページは閾値判定だけでよい。
const (
	reportTitleX = 220
	reportTitleY = 50
	reportFromY  = 66
	reportToY    = 80

	reportColIDX      = 50
	reportColBuyerX   = 90
	reportColInvoiceX = 200
	reportColTotalX   = 400
	reportColDateX    = 470

	reportHeaderY   = 100
	reportFirstRowY = 125
	reportRowHeight = 50
	reportBottomY   = 770
)

// ExportCSV は請求1件をCSVにして返し、invoice番号をキーにファイル保存する。
// ヘッダと明細は同一トランザクションで読む（スナップショット一貫性）。
func (u *ReportUsecase) ExportCSV(ctx context.Context, billingID int64) ([]byte, error) {
	if billingID <= 0 {
		return nil, NewAppError(KindValidation, "invalid billing_id")
	}

	var billing model.Billing
	var items []model.BillingItem

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		b, err := r.Billings().FindByID(ctx, billingID)
		if err == repo.ErrNotFound {
			return NewAppError(KindNotFound, "billing not found")
		}
		if err != nil {
			return NewAppError(KindInternal, "db error")
		}

		its, err := r.BillingItems().ListByBillingID(ctx, billingID)
		if err != nil {
			return NewAppError(KindInternal, "db error")
		}

		billing = b
		items = its
		return nil
	})
	if err != nil {
		return nil, err
	}

	data := buildCSV(items)

	//ファイルはrenameで置かれるまで見えない
	name := fmt.Sprintf("invoice_%s.csv", billing.InvoiceNumber)
	if err := u.files.Save(name, data); err != nil {
		return nil, NewAppError(KindInternal, "export failed")
	}

	return data, nil
}

// ヘッダ行＋明細行。クォート・エスケープなしの素のカンマ区切り。
func buildCSV(items []model.BillingItem) []byte {
	rows := make([]string, 0, len(items)+1)
	rows = append(rows, "ProductID,Quantity,PriceEach,TotalPrice")
	for _, it := range items {
		rows = append(rows, fmt.Sprintf("%d,%d,%d,%d", it.ProductID, it.Quantity, it.PriceEach, it.TotalPrice))
	}
	return []byte(strings.Join(rows, "\n"))
}

type reportRow struct {
	billingID int64
	buyerName string
	invoiceNo string
	total     int64
	createdAt time.Time
}

// GenerateReport は期間内の請求一覧をPDFにして返す。
func (u *ReportUsecase) GenerateReport(ctx context.Context, startStr string, endStr string) ([]byte, error) {
	start, err := parseReportTime(startStr)
	if err != nil {
		return nil, NewAppError(KindValidation, "invalid date format")
	}
	end, err := parseReportTime(endStr)
	if err != nil {
		return nil, NewAppError(KindValidation, "invalid date format")
	}
	if end.Before(start) {
		return nil, NewAppError(KindValidation, "invalid date range")
	}

	var rows []reportRow

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		billings, err := r.Billings().ListByCreatedAtRange(ctx, start, end)
		if err != nil {
			return NewAppError(KindInternal, "db error")
		}
		if len(billings) == 0 {
			return NewAppError(KindNotFound, "no billings in range")
		}

		rows = make([]reportRow, 0, len(billings))
		for _, b := range billings {
			items, err := r.BillingItems().ListByBillingID(ctx, b.ID)
			if err != nil {
				return NewAppError(KindInternal, "db error")
			}

			//表示合計は明細から再計算する
			var total int64 = 0
			for _, it := range items {
				total += it.TotalPrice
			}

			buyerName := "-"
			buyer, err := r.Users().FindByID(ctx, b.BuyerID)
			if err == nil {
				buyerName = buyer.Name
			} else if err != repo.ErrNotFound {
				return NewAppError(KindInternal, "db error")
			}

			rows = append(rows, reportRow{
				billingID: b.ID,
				buyerName: buyerName,
				invoiceNo: b.InvoiceNumber,
				total:     total,
				createdAt: b.CreatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.renderReport(start, end, rows)
}

func (u *ReportUsecase) renderReport(start time.Time, end time.Time, rows []reportRow) ([]byte, error) {
	doc := u.newDoc()

	//タイトルブロック
	doc.Text(reportTitleX, reportTitleY, "Transaction Report")
	doc.Text(reportTitleX, reportFromY, "From: "+start.Format("2006-01-02 15:04:05"))
	doc.Text(reportTitleX, reportToY, "To: "+end.Format("2006-01-02 15:04:05"))

	writeHeader := func(y float64) {
		doc.Text(reportColIDX, y, "ID")
		doc.Text(reportColBuyerX, y, "Buyer")
		doc.Text(reportColInvoiceX, y, "Invoice No")
		doc.Text(reportColTotalX, y, "Total")
		doc.Text(reportColDateX, y, "Date")
	}
	writeHeader(reportHeaderY)

	y := float64(reportFirstRowY)
	for _, row := range rows {
		//次の行が印字領域を割るなら改ページ
		if y+reportRowHeight > reportBottomY {
			doc.PageBreak()
			writeHeader(reportHeaderY)
			y = reportFirstRowY
		}

		doc.Text(reportColIDX, y, fmt.Sprintf("%d", row.billingID))
		doc.Text(reportColBuyerX, y, row.buyerName)
		doc.Text(reportColInvoiceX, y, row.invoiceNo)
		doc.Text(reportColTotalX, y, fmt.Sprintf("%d", row.total))
		doc.Text(reportColDateX, y, row.createdAt.Format("2006-01-02 15:04"))
		y += reportRowHeight
	}

	doc.Text(reportTitleX, y+reportRowHeight/2, "End of Report")

	out, err := doc.Finalize()
	if err != nil {
		return nil, NewAppError(KindInternal, "render failed")
	}
	return out, nil
}

// RFC3339優先、だめなら日付のみ
func parseReportTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
