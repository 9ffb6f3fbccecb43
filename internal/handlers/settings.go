package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/mindfulwealth/backend/internal/auth"
	"example.com/mindfulwealth/backend/internal/engine"
	"example.com/mindfulwealth/backend/internal/models"
	"example.com/mindfulwealth/backend/internal/repository"
)

type SettingsHandler struct {
	Users *repository.UserRepository
}

// NewSettingsHandler builds the settings handler.
func NewSettingsHandler(users *repository.UserRepository) *SettingsHandler {
	return &SettingsHandler{Users: users}
}

type SettingsResponse struct {
	Personality       string `json:"personality"`
	Language          string `json:"language"`
	PreferredCurrency string `json:"preferred_currency"`
}

type UpdateSettingsRequest struct {
	Personality string `json:"personality"`
	Language    string `json:"language"`
	Currency    string `json:"currency"`
}

// Get returns the user's reply style preferences.
func (h *SettingsHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "user not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toSettings(user))
}

// Update changes any of the user's style preferences. Omitted fields keep
// their stored value; unknown values are rejected here rather than silently
// clamped, so the UI gets a clear error.
func (h *SettingsHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "user not found")
		}
		return serverError(c)
	}

	personality := user.Personality
	if req.Personality != "" {
		parsed, ok := engine.ParsePersonality(req.Personality)
		if !ok {
			return badRequest(c, "unsupported personality")
		}
		personality = string(parsed)
	}

	language := user.Language
	if req.Language != "" {
		parsed, ok := engine.ParseLanguage(req.Language)
		if !ok {
			return badRequest(c, "unsupported language")
		}
		language = string(parsed)
	}

	currency := user.PreferredCurrency
	if req.Currency != "" {
		parsed, ok := engine.ParseCurrency(req.Currency)
		if !ok {
			return badRequest(c, "unsupported currency")
		}
		currency = string(parsed)
	}

	updated, err := h.Users.UpdatePreferences(c.Request().Context(), userID, personality, language, currency)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toSettings(updated))
}

func toSettings(user models.User) SettingsResponse {
	return SettingsResponse{
		Personality:       user.Personality,
		Language:          user.Language,
		PreferredCurrency: user.PreferredCurrency,
	}
}
