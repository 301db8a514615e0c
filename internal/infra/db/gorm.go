package db

import (
	"app/internal/config"
	"app/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
}

// Migrate はスキーマを最新化する。
// AutoMigrateで張れない部分一意インデックスはここで張る。
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Billing{},
		&model.BillingItem{},
	); err != nil {
		return err
	}

	//バイヤーごとにOPENカートは1つだけ
	return gormDB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_open_buyer ON carts (buyer_id) WHERE status = 'OPEN'`,
	).Error
}
