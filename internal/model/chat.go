package model

// ChatMessage is a single entry of a client-supplied conversation
// history. Role is expected to be one of "user", "assistant" or
// "system", but the value is not enforced: history is accepted for
// API compatibility and never consulted when producing a reply.
//
// Fields:
//
//	Role    – who authored the message.
//	Content – the message text.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat. Message is required and
// must be non-empty after trimming; History is optional.
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

// ChatResponse is the body returned by POST /api/chat. Reply carries
// the consultant's answer and SuggestedFollowUps lists questions the
// client may offer as quick replies. Both are fully determined by the
// request message; identical inputs produce identical responses.
type ChatResponse struct {
	Reply              string   `json:"reply"`
	SuggestedFollowUps []string `json:"suggested_follow_ups"`
}
