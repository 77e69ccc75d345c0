// Package queue defines message payloads exchanged over the message broker.
package queue

// ChatHandledEvent is published after the chat endpoint produces a
// reply. It carries enough information for downstream consumers to
// log or aggregate intent statistics without calling the API.
type ChatHandledEvent struct {
	Message    string `json:"message"`
	Intent     string `json:"intent"`
	ReplyChars int    `json:"reply_chars"`
	HandledAt  string `json:"handled_at"`
}
