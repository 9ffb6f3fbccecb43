package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/auth"
	"example.com/mindfulwealth/backend/internal/repository"
)

type DashboardHandler struct {
	Dashboard *repository.DashboardRepository
}

// NewDashboardHandler builds the dashboard handler.
func NewDashboardHandler(dashboard *repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

type DashboardResponse struct {
	Month            string          `json:"month"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	TotalBudget      decimal.Decimal `json:"total_budget"`
	Remaining        decimal.Decimal `json:"remaining"`
	TotalSaved       decimal.Decimal `json:"total_saved"`
	SavingsRate      decimal.Decimal `json:"savings_rate"`
	ImpulseCount     int             `json:"impulse_count"`
	TransactionCount int             `json:"transaction_count"`
}

// Summary returns the month's aggregates: spend vs budget plus the money
// kept by skipping impulses.
func (h *DashboardHandler) Summary(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	month := c.QueryParam("month")
	if month == "" {
		month = repository.MonthKey(time.Now())
	}
	if !monthPattern.MatchString(month) {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	summary, err := h.Dashboard.Summary(c.Request().Context(), userID, month)
	if err != nil {
		return serverError(c)
	}

	response := DashboardResponse{
		Month:            month,
		TotalSpent:       summary.TotalSpent,
		TotalBudget:      summary.TotalBudget,
		Remaining:        summary.TotalBudget.Sub(summary.TotalSpent),
		TotalSaved:       summary.TotalSaved,
		SavingsRate:      savingsRate(summary),
		ImpulseCount:     summary.ImpulseCount,
		TransactionCount: summary.TransactionCount,
	}

	return c.JSON(http.StatusOK, response)
}

// savingsRate is saved / (saved + spent), as a percentage with two decimal
// places; zero when nothing moved at all.
func savingsRate(summary repository.DashboardSummary) decimal.Decimal {
	base := summary.TotalSaved.Add(summary.TotalSpent)
	if !base.IsPositive() {
		return decimal.Zero
	}

	return summary.TotalSaved.Div(base).Mul(decimal.NewFromInt(100)).Round(2)
}
