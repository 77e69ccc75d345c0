// Package consultant implements the rule-based certification
// consultant behind POST /api/chat. Dispatch is a pure function over a
// static topic table: no state, no I/O, and the only failure mode is
// an empty message.
package consultant

import (
	"errors"
	"strings"

	"github.com/iliyamo/certification-consulting-api/internal/model"
)

// ErrEmptyMessage is returned when the message is empty or whitespace
// only after trimming. Handlers should translate this into an HTTP
// 400 response.
var ErrEmptyMessage = errors.New("message is required")

// Intent labels reported alongside a dispatch result. They identify
// which matching branch produced the reply and exist for analytics
// only; topic matches use "topic:" plus the matched key.
const (
	IntentGreeting = "greeting"
	IntentTimeline = "timeline"
	IntentCost     = "cost"
	IntentDefault  = "default"

	intentTopicPrefix = "topic:"
)

var greetingKeywords = []string{"hello", "hi", "hey"}

var genericSuggestions = []string{
	"What standards are most relevant for our industry?",
	"Can you provide a sample project plan?",
	"What documentation do we need to prepare?",
}

var topicSuggestions = []string{
	"Can you estimate effort for our team size?",
	"What evidence do auditors expect?",
	"Can we combine multiple standards into an integrated management system?",
}

// Dispatch classifies a free-text message and returns the canned
// consultant reply with suggested follow-up questions.
func Dispatch(message string) (model.ChatResponse, error) {
	resp, _, err := DispatchWithIntent(message)
	return resp, err
}

// DispatchWithIntent is Dispatch plus the label of the branch that
// matched. Branches are tried in a fixed priority order: greeting,
// then the topic table in its defined order, then timeline and cost
// keywords, then a default reply. The first match wins; a message
// mentioning several standards gets the one listed first in the table.
func DispatchWithIntent(message string) (model.ChatResponse, string, error) {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return model.ChatResponse{}, "", ErrEmptyMessage
	}

	for _, k := range greetingKeywords {
		if strings.Contains(text, k) {
			return model.ChatResponse{
				Reply: "Hi! I’m your certification assistant. I can help with ISO 9001, ISO 27001, ISO 14001 and more. " +
					"Tell me your goals, industry, and timeframe, and I’ll recommend a path to certification.",
				SuggestedFollowUps: genericSuggestions,
			}, IntentGreeting, nil
		}
	}

	for _, t := range topics {
		if strings.Contains(text, t.Key) {
			return model.ChatResponse{
				Reply:              topicReply(t),
				SuggestedFollowUps: topicSuggestions,
			}, intentTopicPrefix + t.Key, nil
		}
	}

	if strings.Contains(text, "timeline") || strings.Contains(text, "how long") {
		return model.ChatResponse{
			Reply: "Timelines vary by scope and readiness. Most clients complete core work in 8–20 weeks. " +
				"Share your headcount, sites, and current policies for a tailored plan.",
			SuggestedFollowUps: []string{"We have 2 sites and 80 staff—what’s a realistic plan?"},
		}, IntentTimeline, nil
	}

	if strings.Contains(text, "cost") || strings.Contains(text, "price") || strings.Contains(text, "budget") {
		return model.ChatResponse{
			Reply: "Consulting effort depends on scope and existing maturity. We typically work on fixed-fee phases " +
				"aligned to milestones. Share your standards of interest and timeline and we’ll propose options.",
			SuggestedFollowUps: []string{"We’re targeting ISO 27001 in Q2—please outline a proposal."},
		}, IntentCost, nil
	}

	return model.ChatResponse{
		Reply: "I can help map the right certification path for you. Which standards are you considering (e.g., ISO 9001, ISO 27001)? " +
			"Tell me your industry and timeframe for a tailored plan.",
		SuggestedFollowUps: genericSuggestions,
	}, IntentDefault, nil
}

// topicReply renders the multi-line summary for a matched topic. The
// layout (overview, steps, timeline, benefits) is part of the API
// contract and must stay byte-stable.
func topicReply(t Topic) string {
	var b strings.Builder
	b.WriteString(t.Title)
	b.WriteString("\n\nOverview: ")
	b.WriteString(t.Overview)
	b.WriteString("\n\nTypical steps:\n- ")
	b.WriteString(strings.Join(t.Steps, "\n- "))
	b.WriteString("\n\nTypical timeline: ")
	b.WriteString(t.Timeline)
	b.WriteString("\nBenefits: ")
	b.WriteString(strings.Join(t.Benefits, ", "))
	return b.String()
}
