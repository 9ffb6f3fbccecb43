package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/auth"
	"example.com/mindfulwealth/backend/internal/engine"
	"example.com/mindfulwealth/backend/internal/models"
	"example.com/mindfulwealth/backend/internal/repository"
)

type SavedImpulseHandler struct {
	SavedImpulses *repository.SavedImpulseRepository
}

// NewSavedImpulseHandler builds the saved-impulse handler.
func NewSavedImpulseHandler(savedImpulses *repository.SavedImpulseRepository) *SavedImpulseHandler {
	return &SavedImpulseHandler{SavedImpulses: savedImpulses}
}

type CreateSavedImpulseRequest struct {
	Item     string          `json:"item" validate:"required,max=200"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Currency string          `json:"currency" validate:"required,len=3"`
}

type SavedImpulseListResponse struct {
	SavedImpulses []models.SavedImpulse `json:"saved_impulses"`
	TotalSaved    decimal.Decimal       `json:"total_saved"`
}

// List returns the user's saved impulses with the running total.
func (h *SavedImpulseHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	impulses, err := h.SavedImpulses.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	total, err := h.SavedImpulses.TotalSaved(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, SavedImpulseListResponse{SavedImpulses: impulses, TotalSaved: total})
}

// Create records a manually entered skipped impulse; the growth projections
// are computed server-side.
func (h *SavedImpulseHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateSavedImpulseRequest
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

	impulse, err := h.SavedImpulses.Create(c.Request().Context(), repository.CreateSavedImpulseInput{
		UserID:         userID,
		Item:           strings.TrimSpace(req.Item),
		Amount:         req.Amount,
		Currency:       string(currency),
		ProjectedValue: engine.Project(req.Amount, 1),
		Projected5Yr:   engine.Project(req.Amount, 5),
	})
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, impulse)
}
