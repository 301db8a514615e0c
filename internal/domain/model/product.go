package model

import "time"

// stock は常に0以上。減算はチェックアウト時のみ。
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID    int64     `gorm:"not null;index" json:"seller_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Stock       int64     `gorm:"not null" json:"stock"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
