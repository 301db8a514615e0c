package model

import "time"

type CartStatus string

const (
	CartStatusOpen       CartStatus = "OPEN"
	CartStatusCheckedOut CartStatus = "CHECKED_OUT"
)

// 1バイヤーにつきOPENは1つ
// 遷移は OPEN -> CHECKED_OUT のみ、逆方向なし。
type Cart struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	BuyerID   int64      `gorm:"not null;index" json:"buyer_id"`
	Status    CartStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
