package model

import "time"

// カートの明細
// price_at_add（追加時点の価格）を必ず保存。後から更新しない。
type CartItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID     int64     `gorm:"not null;index" json:"cart_id"`
	ProductID  int64     `gorm:"not null;index" json:"product_id"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	PriceAtAdd int64     `gorm:"not null;column:price_at_add" json:"price_at_add"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
