package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/middleware"
)

// reportingHandler handles HTTP requests for ledger reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/receivables-aging", h.receivablesAging)
		reports.GET("/payables-aging", h.payablesAging)
	}
}

// parseAsOf resolves the report reference date from the asOf query
// parameter, defaulting to today.
func parseAsOf(c *gin.Context) (time.Time, bool) {
	var params dto.AgingReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return time.Time{}, false
	}
	if params.AsOf == "" {
		return time.Now().UTC(), true
	}
	asOf, err := time.Parse(time.DateOnly, params.AsOf)
	if err != nil {
		return time.Time{}, false
	}
	return asOf, true
}

func (h *reportingHandler) agingReport(c *gin.Context, build func(context.Context, time.Time) (*domain.AgingReport, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseAsOf(c)
	if !ok {
		logger.Warn("Invalid asOf parameter for aging report")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid asOf date, expected YYYY-MM-DD"})
		return
	}

	report, err := build(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build aging report")
		return
	}

	logger.Info("Aging report built", slog.String("kind", string(report.Kind)), slog.Int("rows", len(report.Rows)))
	c.JSON(http.StatusOK, dto.ToAgingReportResponse(report))
}

// receivablesAging godoc
// @Summary Receivables aging report
// @Description Buckets unpaid invoice balances by days past due as of a date, grouped per customer
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.AgingReportResponse
// @Failure 400 {object} ErrorResponse "Invalid asOf date"
// @Security BearerAuth
// @Router /reports/receivables-aging [get]
func (h *reportingHandler) receivablesAging(c *gin.Context) {
	h.agingReport(c, h.reportingService.ReceivablesAging)
}

// payablesAging godoc
// @Summary Payables aging report
// @Description Buckets unpaid bill balances by days past due as of a date, grouped per vendor
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.AgingReportResponse
// @Failure 400 {object} ErrorResponse "Invalid asOf date"
// @Security BearerAuth
// @Router /reports/payables-aging [get]
func (h *reportingHandler) payablesAging(c *gin.Context) {
	h.agingReport(c, h.reportingService.PayablesAging)
}
