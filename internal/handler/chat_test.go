package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/certification-consulting-api/internal/model"
	"github.com/iliyamo/certification-consulting-api/internal/queue"
)

func newChatServer(publish func(ctx context.Context, ev queue.ChatHandledEvent) error) *echo.Echo {
	e := echo.New()
	e.POST("/api/chat", NewChatHandler(publish).Chat)
	return e
}

func postChat(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestChat_TopicMatch(t *testing.T) {
	e := newChatServer(nil)

	rec := postChat(e, `{"message": "Tell me about iso 27001 timelines"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Reply, "ISO/IEC 27001 (Information Security)"))
	assert.Len(t, resp.SuggestedFollowUps, 3)
}

func TestChat_Greeting(t *testing.T) {
	e := newChatServer(nil)

	rec := postChat(e, `{"message": "Hello!"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "certification assistant")
	assert.Len(t, resp.SuggestedFollowUps, 3)
}

func TestChat_EmptyMessage(t *testing.T) {
	e := newChatServer(nil)

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
		rec := postChat(e, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "message is required", "body %s", body)
	}
}

func TestChat_InvalidBody(t *testing.T) {
	e := newChatServer(nil)

	rec := postChat(e, `{"message": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid body")
}

func TestChat_HistoryIsIgnored(t *testing.T) {
	e := newChatServer(nil)

	bare := postChat(e, `{"message": "what does it cost?"}`)
	withHistory := postChat(e, `{"message": "what does it cost?", "history": [
		{"role": "user", "content": "hello"},
		{"role": "assistant", "content": "Hi! How can I help?"}
	]}`)

	require.Equal(t, http.StatusOK, bare.Code)
	require.Equal(t, http.StatusOK, withHistory.Code)
	assert.Equal(t, bare.Body.String(), withHistory.Body.String())
}

func TestChat_PublishesEvent(t *testing.T) {
	events := make(chan queue.ChatHandledEvent, 1)
	e := newChatServer(func(ctx context.Context, ev queue.ChatHandledEvent) error {
		events <- ev
		return nil
	})

	rec := postChat(e, `{"message": "we need iso 9001"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	select {
	case ev := <-events:
		assert.Equal(t, "topic:iso 9001", ev.Intent)
		assert.Equal(t, "we need iso 9001", ev.Message)
		assert.Greater(t, ev.ReplyChars, 0)
		assert.NotEmpty(t, ev.HandledAt)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a chat.handled event to be published")
	}
}

func TestChat_NoEventOnInvalidInput(t *testing.T) {
	events := make(chan queue.ChatHandledEvent, 1)
	e := newChatServer(func(ctx context.Context, ev queue.ChatHandledEvent) error {
		events <- ev
		return nil
	})

	rec := postChat(e, `{"message": "  "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	select {
	case <-events:
		t.Fatal("no event should be published for a rejected message")
	case <-time.After(100 * time.Millisecond):
	}
}
