package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/mindfulwealth/backend/internal/auth"
	"example.com/mindfulwealth/backend/internal/models"
	"example.com/mindfulwealth/backend/internal/notifications"
)

type NotificationHandler struct {
	Hub *notifications.Hub
}

// NewNotificationHandler builds the SSE notification handler.
func NewNotificationHandler(hub *notifications.Hub) *NotificationHandler {
	return &NotificationHandler{Hub: hub}
}

// Stream opens an SSE event stream for the user.
func (h *NotificationHandler) Stream(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return serverError(c)
	}

	ch, unsubscribe := h.Hub.Subscribe(userID)
	defer unsubscribe()

	_ = writeSSE(c, notifications.Event{Type: "connected", Data: map[string]string{"user_id": userID.String()}})
	flusher.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			if err := writeSSE(c, event); err != nil {
				return nil
			}
			flusher.Flush()
		}
	}
}

func writeSSE(c echo.Context, event notifications.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := c.Response().Write([]byte("event: " + event.Type + "\n")); err != nil {
		return err
	}
	if _, err := c.Response().Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
		return err
	}

	return nil
}

func publishBudgetUpdate(hub *notifications.Hub, userID uuid.UUID, budget models.Budget) {
	if hub == nil {
		return
	}

	hub.Publish(userID, notifications.Event{
		Type: "budget_updated",
		Data: map[string]interface{}{
			"category":  budget.Category,
			"month":     budget.Month,
			"planned":   budget.Planned,
			"spent":     budget.Spent,
			"remaining": budget.Planned.Sub(budget.Spent),
		},
	})
}

func publishImpulseSaved(hub *notifications.Hub, userID uuid.UUID, impulse models.SavedImpulse) {
	if hub == nil {
		return
	}

	hub.Publish(userID, notifications.Event{
		Type: "impulse_saved",
		Data: map[string]interface{}{
			"item":                impulse.Item,
			"amount":              impulse.Amount,
			"currency":            impulse.Currency,
			"projected_value_1yr": impulse.ProjectedValue,
			"projected_value_5yr": impulse.Projected5Yr,
		},
	})
}
