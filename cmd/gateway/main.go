package main

import (
	"log"

	"app/internal/gateway"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := gateway.LoadConfig()
	proxy := gateway.NewProxy(cfg)

	e := proxy.NewServer()
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
