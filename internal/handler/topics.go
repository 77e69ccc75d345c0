// This file defines the public topic catalog endpoint. It exposes the
// same static table the chat dispatcher consults, so frontends can
// render the supported standards without hardcoding them.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/certification-consulting-api/internal/consultant"
)

// TopicView is a catalog entry exposed via the public API.
type TopicView struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Overview string   `json:"overview"`
	Steps    []string `json:"steps"`
	Timeline string   `json:"timeline"`
	Benefits []string `json:"benefits"`
}

// ListTopics returns the certification catalog in match order.
// Response JSON contains an "items" array of TopicView.
func ListTopics(c echo.Context) error {
	ts := consultant.Topics()
	out := make([]TopicView, 0, len(ts))
	for _, t := range ts {
		out = append(out, TopicView{
			Key:      t.Key,
			Title:    t.Title,
			Overview: t.Overview,
			Steps:    t.Steps,
			Timeline: t.Timeline,
			Benefits: t.Benefits,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
