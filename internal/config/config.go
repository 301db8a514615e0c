package config

import (
	"fmt"
	"os"
	"time"
)

// Configはapiサービス全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // 優先。無ければPOSTGRES_*から組み立て
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string

	ExportDir       string        // CSVエクスポート先
	CheckoutTimeout time.Duration // チェックアウトの締め切り
}

// Loadは環境変数から設定を読む。未設定はデフォルト。
func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		ExportDir:       getenv("EXPORT_DIR", "export"),
		CheckoutTimeout: parseDuration(getenv("CHECKOUT_TIMEOUT", "10s"), 10*time.Second),
	}
}

// DSNはgorm用の接続文字列を返す。
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
