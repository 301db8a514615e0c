package model

import "time"

// チェックアウト成功ごとに1件、作成後は不変。
// invoice_number はDB側でも一意を保証する。
type Billing struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID        int64     `gorm:"not null;index" json:"cart_id"`
	BuyerID       int64     `gorm:"not null;index" json:"buyer_id"`
	TotalAmount   int64     `gorm:"not null" json:"total_amount"`
	InvoiceNumber string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"invoice_number"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
