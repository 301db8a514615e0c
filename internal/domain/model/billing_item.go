package model

import "time"

// total_price = quantity * price_each
type BillingItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BillingID  int64     `gorm:"not null;index" json:"billing_id"`
	ProductID  int64     `gorm:"not null;index" json:"product_id"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	PriceEach  int64     `gorm:"not null" json:"price_each"`
	TotalPrice int64     `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
