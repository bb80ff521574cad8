package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/totegamma/storykeep/internal/domain")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleRealtime streams the caller's association events over a websocket.
// Clients may send {"type":"h"} as a heartbeat; anything else is ignored.
func (h *Handler) handleRealtime(c echo.Context) error {
	if !h.signal.Enabled() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "realtime is disabled"})
	}
	accountID := requester(c)

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return nil
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	output := make(chan domain.Event)
	go func() {
		if err := h.signal.Realtime(ctx, accountID, output); err != nil {
			slog.ErrorContext(
				ctx, "realtime subscription failed",
				slog.String("error", err.Error()),
				slog.String("module", "socket"),
			)
		}
		cancel()
	}()

	go func() {
		defer cancel()
		for {
			var req struct {
				Type string `json:"type"`
			}
			err := ws.ReadJSON(&req)
			if err != nil {
				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.DebugContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}
				return
			}
			if req.Type != "h" {
				slog.DebugContext(
					ctx, "Unknown request type",
					slog.String("type", req.Type),
					slog.String("module", "socket"),
				)
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-output:
			if err := ws.WriteJSON(event); err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
