// Package handler exposes the HTTP handlers of the consulting API.
// This file implements the chat endpoint: it binds the request,
// delegates to the consultant dispatcher and reports the handled
// message to the analytics queue without blocking the response.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/certification-consulting-api/internal/consultant"
	"github.com/iliyamo/certification-consulting-api/internal/model"
	"github.com/iliyamo/certification-consulting-api/internal/queue"
)

// ChatHandler bundles dependencies for the chat endpoint. Publish is
// optional; when nil, no analytics events are emitted. The publisher
// runs in a goroutine and its errors are logged by the publishing
// layer, never surfaced to the client.
type ChatHandler struct {
	Publish func(ctx context.Context, ev queue.ChatHandledEvent) error
}

func NewChatHandler(publish func(ctx context.Context, ev queue.ChatHandledEvent) error) *ChatHandler {
	return &ChatHandler{Publish: publish}
}

// Chat handles POST /api/chat. The optional history field is accepted
// for API compatibility but never influences the reply; requests are
// fully independent of each other.
func (h *ChatHandler) Chat(c echo.Context) error {
	var req model.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	resp, intent, err := consultant.DispatchWithIntent(req.Message)
	if err != nil {
		if errors.Is(err, consultant.ErrEmptyMessage) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "message is required"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "dispatch failed"})
	}

	if h.Publish != nil {
		ev := queue.ChatHandledEvent{
			Message:    req.Message,
			Intent:     intent,
			ReplyChars: len(resp.Reply),
			HandledAt:  time.Now().UTC().Format(time.RFC3339),
		}
		// Fire and forget: broker health must never delay or fail the reply.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = h.Publish(ctx, ev)
		}()
	}

	return c.JSON(http.StatusOK, resp)
}
