package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /billing, /report のHTTP
type BillingHandler struct {
	checkout *usecase.CheckoutUsecase
	report   *usecase.ReportUsecase
}

// DI
func NewBillingHandler(checkout *usecase.CheckoutUsecase, report *usecase.ReportUsecase) *BillingHandler {
	return &BillingHandler{checkout: checkout, report: report}
}

type ReportRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (h *BillingHandler) RegisterRoutes(e *echo.Echo) {
	//POSTの:idはカートID、GETの:idは請求ID
	e.POST("/billing/:id", h.checkoutCart)
	e.GET("/billing/:id/csv", h.exportCSV)
	e.POST("/billing/report", h.reportPDF)
	e.GET("/report/pdf", h.reportPDF)
}

func (h *BillingHandler) checkoutCart(c echo.Context) error {
	cartID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart id"})
	}

	out, err := h.checkout.Checkout(c.Request().Context(), cartID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *BillingHandler) exportCSV(c echo.Context) error {
	billingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid billing id"})
	}

	data, err := h.report.ExportCSV(c.Request().Context(), billingID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Blob(http.StatusOK, "text/csv", data)
}

func (h *BillingHandler) reportPDF(c echo.Context) error {
	var req ReportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	//GETはクエリでも受ける
	if req.StartTime == "" {
		req.StartTime = c.QueryParam("start_time")
	}
	if req.EndTime == "" {
		req.EndTime = c.QueryParam("end_time")
	}

	data, err := h.report.GenerateReport(c.Request().Context(), req.StartTime, req.EndTime)
	if err != nil {
		return writeError(c, err)
	}

	return c.Blob(http.StatusOK, "application/pdf", data)
}
