package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はルート登録済みのechoを返す。
func New(
	userH *handler.UserHandler,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	billingH *handler.BillingHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	userH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	billingH.RegisterRoutes(e)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
