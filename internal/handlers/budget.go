package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/auth"
	"example.com/mindfulwealth/backend/internal/models"
	"example.com/mindfulwealth/backend/internal/repository"
)

type BudgetHandler struct {
	Budgets *repository.BudgetRepository
}

// NewBudgetHandler builds the budget handler.
func NewBudgetHandler(budgets *repository.BudgetRepository) *BudgetHandler {
	return &BudgetHandler{Budgets: budgets}
}

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type SetBudgetRequest struct {
	Category string          `json:"category" validate:"required,max=100"`
	Month    string          `json:"month"`
	Planned  decimal.Decimal `json:"planned" validate:"required"`
}

type BudgetListResponse struct {
	Month   string          `json:"month"`
	Budgets []models.Budget `json:"budgets"`
}

// List returns the budget rows for one month (current month by default).
func (h *BudgetHandler) List(c echo.Context) error {
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

	budgets, err := h.Budgets.ListByMonth(c.Request().Context(), userID, month)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, BudgetListResponse{Month: month, Budgets: budgets})
}

// Set updates the planned amount for a category and month.
func (h *BudgetHandler) Set(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	month := req.Month
	if month == "" {
		month = repository.MonthKey(time.Now())
	}
	if !monthPattern.MatchString(month) {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}
	if req.Planned.IsNegative() {
		return badRequest(c, "planned amount cannot be negative")
	}

	budget, err := h.Budgets.SetPlanned(c.Request().Context(), userID,
		strings.ToLower(strings.TrimSpace(req.Category)), month, req.Planned)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, budget)
}
