package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/ai"
	"example.com/mindfulwealth/backend/internal/auth"
	"example.com/mindfulwealth/backend/internal/engine"
	"example.com/mindfulwealth/backend/internal/notifications"
	"example.com/mindfulwealth/backend/internal/rates"
	"example.com/mindfulwealth/backend/internal/repository"
)

const chatHistoryTurns = 5

type ChatHandler struct {
	Engine        *engine.Engine
	Users         *repository.UserRepository
	Transactions  *repository.TransactionRepository
	Budgets       *repository.BudgetRepository
	SavedImpulses *repository.SavedImpulseRepository
	ChatLogs      *repository.ChatLogRepository
	Notifier      *notifications.Hub
	Logger        *slog.Logger
}

// NewChatHandler builds the chat handler.
func NewChatHandler(
	eng *engine.Engine,
	users *repository.UserRepository,
	transactions *repository.TransactionRepository,
	budgets *repository.BudgetRepository,
	savedImpulses *repository.SavedImpulseRepository,
	chatLogs *repository.ChatLogRepository,
	notifier *notifications.Hub,
	logger *slog.Logger,
) *ChatHandler {
	return &ChatHandler{
		Engine:        eng,
		Users:         users,
		Transactions:  transactions,
		Budgets:       budgets,
		SavedImpulses: savedImpulses,
		ChatLogs:      chatLogs,
		Notifier:      notifier,
		Logger:        logger,
	}
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`

	// Optional per-request style overrides; stored preferences apply
	// otherwise. The conversation context round-trips through the client so
	// the server holds no session state.
	Personality string          `json:"personality"`
	Language    string          `json:"language"`
	Currency    string          `json:"currency"`
	Context     *engine.Context `json:"context"`
}

type ConvertedAmount struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type ChatResponse struct {
	Response      string                `json:"response"`
	FinancialData *engine.FinancialData `json:"financialData,omitempty"`
	Context       engine.Context        `json:"context"`
	Converted     *ConvertedAmount      `json:"converted,omitempty"`
}

// Chat runs one message through the analysis engine and applies the
// persistence side effects: reasonable spending becomes a transaction and a
// budget update, impulse spending a saved-impulse entry.
func (h *ChatHandler) Chat(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	ctx := c.Request().Context()

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return serverError(c)
	}

	style := engine.Style{
		Personality:       engine.Personality(firstNonEmpty(req.Personality, user.Personality)),
		Language:          engine.Language(firstNonEmpty(req.Language, user.Language)),
		PreferredCurrency: engine.Currency(strings.ToUpper(firstNonEmpty(req.Currency, user.PreferredCurrency))),
	}

	var conv engine.Context
	if req.Context != nil {
		conv = *req.Context
	}

	history := h.promptHistory(c, userID)

	result, conv := h.Engine.Analyze(ctx, req.Message, history, conv, style)

	response := ChatResponse{
		Response:      result.ResponseText,
		FinancialData: result.Data,
		Context:       conv,
	}

	if result.Data != nil {
		currency := style.PreferredCurrency
		if conv.LastMentionedAmount != nil {
			currency = conv.LastMentionedAmount.Currency
		}

		h.applySideEffects(c, userID, result.Data, currency)

		if currency != style.PreferredCurrency {
			amount := decimal.NewFromFloat(result.Data.Amount)
			if converted, ok := rates.Convert(amount, currency, style.PreferredCurrency); ok {
				response.Converted = &ConvertedAmount{
					Amount:   converted,
					Currency: string(style.PreferredCurrency),
				}
			}
		}
	}

	h.logExchange(c, userID, req.Message, result)

	return c.JSON(http.StatusOK, response)
}

func (h *ChatHandler) promptHistory(c echo.Context, userID uuid.UUID) []ai.Message {
	logs, err := h.ChatLogs.Recent(c.Request().Context(), userID, chatHistoryTurns)
	if err != nil {
		h.Logger.Warn("loading chat history failed", "error", err, "user_id", userID)
		return nil
	}

	history := make([]ai.Message, 0, len(logs)*2)
	for _, log := range logs {
		history = append(history,
			ai.Message{Role: "user", Content: log.Message},
			ai.Message{Role: "assistant", Content: log.Response},
		)
	}

	return history
}

// applySideEffects persists what the engine recognized. Failures are logged
// and never surface: the chat reply is already composed.
func (h *ChatHandler) applySideEffects(c echo.Context, userID uuid.UUID, data *engine.FinancialData, currency engine.Currency) {
	ctx := c.Request().Context()
	amount := decimal.NewFromFloat(data.Amount)

	if data.Type == engine.ClassificationReasonable {
		_, err := h.Transactions.Create(ctx, repository.CreateTransactionInput{
			UserID:   userID,
			Amount:   amount,
			Currency: string(currency),
			Category: data.Category,
			SpentAt:  time.Now().UTC(),
		})
		if err != nil {
			h.Logger.Warn("recording transaction failed", "error", err, "user_id", userID)
			return
		}

		month := repository.MonthKey(time.Now())
		budget, err := h.Budgets.ApplySpend(ctx, userID, data.Category, month, amount)
		if err != nil {
			h.Logger.Warn("updating budget failed", "error", err, "user_id", userID)
			return
		}

		publishBudgetUpdate(h.Notifier, userID, budget)
		return
	}

	impulse := repository.CreateSavedImpulseInput{
		UserID:   userID,
		Item:     data.Category,
		Amount:   amount,
		Currency: string(currency),
	}
	if data.PotentialValue1Yr != nil {
		impulse.ProjectedValue = decimal.NewFromFloat(*data.PotentialValue1Yr)
	}
	if data.PotentialValue5Yr != nil {
		impulse.Projected5Yr = decimal.NewFromFloat(*data.PotentialValue5Yr)
	}

	saved, err := h.SavedImpulses.Create(ctx, impulse)
	if err != nil {
		h.Logger.Warn("recording saved impulse failed", "error", err, "user_id", userID)
		return
	}

	publishImpulseSaved(h.Notifier, userID, saved)
}

func (h *ChatHandler) logExchange(c echo.Context, userID uuid.UUID, message string, result engine.Result) {
	var payload []byte
	if result.Data != nil {
		encoded, err := json.Marshal(result.Data)
		if err == nil {
			payload = encoded
		}
	}

	if err := h.ChatLogs.Log(c.Request().Context(), userID, message, result.ResponseText, payload); err != nil {
		h.Logger.Warn("storing chat log failed", "error", err, "user_id", userID)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
