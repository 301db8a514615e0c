package main

import (
	"log"
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/export"
	"app/internal/infra/pdf"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無ければ無いで良い
	_ = godotenv.Load()

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	files := export.NewFileStore(cfg.ExportDir)
	newDoc := func() usecase.Document { return pdf.NewDocument() }

	//Usecase生成
	userUC := usecase.NewUserUsecase(userRepo)
	productUC := usecase.NewProductUsecase(productRepo, inventoryRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, idGen, clock, cfg.CheckoutTimeout)
	reportUC := usecase.NewReportUsecase(txManager, files, newDoc)

	//Handler生成
	userH := handler.NewUserHandler(userUC)
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC)
	billingH := handler.NewBillingHandler(checkoutUC, reportUC)

	//Server起動
	e := server.New(userH, productH, cartH, billingH)
	if err := server.Start(e, ":"+cfg.Port); err != nil {
		log.Fatal(err)
	}
}
