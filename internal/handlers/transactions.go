package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/auth"
	"example.com/mindfulwealth/backend/internal/engine"
	"example.com/mindfulwealth/backend/internal/models"
	"example.com/mindfulwealth/backend/internal/repository"
)

const timeLayout = time.RFC3339

type TransactionHandler struct {
	Transactions *repository.TransactionRepository
	Budgets      *repository.BudgetRepository
}

// NewTransactionHandler builds the transaction handler.
func NewTransactionHandler(transactions *repository.TransactionRepository, budgets *repository.BudgetRepository) *TransactionHandler {
	return &TransactionHandler{Transactions: transactions, Budgets: budgets}
}

type CreateTransactionRequest struct {
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Currency  string          `json:"currency" validate:"required,len=3"`
	Category  string          `json:"category" validate:"required,max=100"`
	IsImpulse bool            `json:"is_impulse"`
	SpentAt   *time.Time      `json:"spent_at"`
}

type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// List returns the user's transactions.
func (h *TransactionHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return badRequest(c, "invalid limit")
		}
		limit = parsed
	}

	transactions, err := h.Transactions.ListByUser(c.Request().Context(), userID, limit)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, TransactionListResponse{Transactions: transactions})
}

// Create records a transaction entered manually and applies it to the
// monthly budget.
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	currency, ok := engine.ParseCurrency(req.Currency)
	if !ok {
		return badRequest(c, "unsupported currency")
	}
	if !req.Amount.IsPositive() {
		return badRequest(c, "amount must be positive")
	}

	spentAt := time.Now().UTC()
	if req.SpentAt != nil {
		spentAt = req.SpentAt.UTC()
	}

	tx, err := h.Transactions.Create(c.Request().Context(), repository.CreateTransactionInput{
		UserID:    userID,
		Amount:    req.Amount,
		Currency:  string(currency),
		Category:  strings.ToLower(strings.TrimSpace(req.Category)),
		IsImpulse: req.IsImpulse,
		SpentAt:   spentAt,
	})
	if err != nil {
		return serverError(c)
	}

	if _, err := h.Budgets.ApplySpend(c.Request().Context(), userID, tx.Category, repository.MonthKey(spentAt), tx.Amount); err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, tx)
}

// ExportCSV streams the user's transactions as a CSV file.
func (h *TransactionHandler) ExportCSV(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	transactions, err := h.Transactions.ListByUser(c.Request().Context(), userID, 0)
	if err != nil {
		return serverError(c)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"id", "amount", "currency", "category", "is_impulse", "spent_at"}
	if err := writer.Write(header); err != nil {
		return serverError(c)
	}

	for _, tx := range transactions {
		record := []string{
			tx.ID.String(),
			tx.Amount.StringFixed(2),
			tx.Currency,
			tx.Category,
			formatBool(tx.IsImpulse),
			tx.SpentAt.Format(timeLayout),
		}
		if err := writer.Write(record); err != nil {
			return serverError(c)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "transactions-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func formatBool(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
