package gateway

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Proxy は上流へそのまま中継するだけ。業務ルールは持たない。
type Proxy struct {
	client *http.Client
	users  string
	carts  string
	bills  string
}

func NewProxy(cfg Config) *Proxy {
	return &Proxy{
		//per-callタイムアウト。上流が落ちていてもすぐエラーで返す。
		client: &http.Client{Timeout: cfg.UpstreamTimeout},
		users:  strings.TrimRight(cfg.UserServiceURL, "/"),
		carts:  strings.TrimRight(cfg.CartServiceURL, "/"),
		bills:  strings.TrimRight(cfg.BillingServiceURL, "/"),
	}
}

func (p *Proxy) NewServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	//ユーザー・セラーモジュール
	e.Any("/users", p.forwardTo(p.users))
	e.Any("/users/:id", p.forwardTo(p.users))
	e.Any("/seller/products", p.forwardTo(p.users))
	e.Any("/seller/products/:id", p.forwardTo(p.users))

	//カートモジュール
	e.Any("/buyers/:buyerId/cart", p.forwardTo(p.carts))
	e.Any("/cart/:cartId", p.forwardTo(p.carts))
	e.Any("/cart/:cartId/items", p.forwardTo(p.carts))

	//請求モジュール
	e.Any("/billing/:id", p.forwardTo(p.bills))
	e.Any("/billing/:id/csv", p.forwardTo(p.bills))
	e.Any("/billing/report", p.forwardTo(p.bills))
	e.Any("/report/pdf", p.forwardTo(p.bills))

	return e
}

func (p *Proxy) forwardTo(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		u, err := url.Parse(base + req.URL.Path)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
		u.RawQuery = req.URL.RawQuery

		upReq, err := http.NewRequestWithContext(req.Context(), req.Method, u.String(), req.Body)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
		copyHeaders(upReq.Header, req.Header)

		resp, err := p.client.Do(upReq)
		if err != nil {
			//上流が応答しないときは待たせずに即エラー
			return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream unreachable"})
		}
		defer resp.Body.Close()

		for k, vv := range resp.Header {
			for _, v := range vv {
				c.Response().Header().Add(k, v)
			}
		}
		c.Response().WriteHeader(resp.StatusCode)
		_, err = io.Copy(c.Response(), resp.Body)
		return err
	}
}

func copyHeaders(dst http.Header, src http.Header) {
	for k, vv := range src {
		if strings.EqualFold(k, "Host") || strings.EqualFold(k, "Connection") {
			continue
		}
		for _, v := range vv {
			dst.Add(k, v)
		}
	}
}
