package gateway

import (
	"os"
	"time"
)

// Configはゲートウェイの設定。
// 上流アドレスはハードコードせず環境変数で差し替える。
type Config struct {
	Port            string
	UpstreamTimeout time.Duration

	UserServiceURL    string
	CartServiceURL    string
	BillingServiceURL string
}

func LoadConfig() Config {
	return Config{
		Port:            getenv("GATEWAY_PORT", "8000"),
		UpstreamTimeout: parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),

		//デフォルトはモノリス構成（apiが全部受ける）
		UserServiceURL:    getenv("USER_SERVICE_URL", "http://localhost:8080"),
		CartServiceURL:    getenv("CART_SERVICE_URL", "http://localhost:8080"),
		BillingServiceURL: getenv("BILLING_SERVICE_URL", "http://localhost:8080"),
	}
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
