package httpapi

import (
	"net/http"
	"strconv"
	"time"
)

type matchDTO struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	SkillLevel string    `json:"skill_level,omitempty"`
	Score      string    `json:"score,omitempty"`
}

type eventDTO struct {
	ID         int64  `json:"id"`
	MatchID    int64  `json:"match_id"`
	Type       string `json:"type"`
	Team       string `json:"team"`
	Minute     *int   `json:"minute,omitempty"`
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	AssistID   int64  `json:"assist_player_id,omitempty"`
	AssistName string `json:"assist_player_name,omitempty"`
	IsPenalty  bool   `json:"is_penalty"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	instance, err := instanceFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.eventService.ListMatches(ctx, instance)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "chat_id", instance.ChatID, "thread_id", instance.ThreadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchDTO{
			ID:         m.ID,
			Date:       m.Date,
			SkillLevel: m.SkillLevel,
			Score:      m.Score,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListEventsByMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEventsByMatch")
	defer span.End()

	instance, err := instanceFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	grouped, err := h.eventService.EventsByMatch(ctx, instance)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "chat_id", instance.ChatID, "thread_id", instance.ThreadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	// Keyed by match id; JSON object keys must be strings.
	items := make(map[string][]eventDTO, len(grouped))
	for matchID, events := range grouped {
		views := make([]eventDTO, 0, len(events))
		for _, e := range events {
			views = append(views, eventDTO{
				ID:         e.ID,
				MatchID:    e.MatchID,
				Type:       string(e.Type),
				Team:       string(e.Team),
				Minute:     e.Minute,
				PlayerID:   e.PlayerID,
				PlayerName: e.PlayerName,
				AssistID:   e.AssistID,
				AssistName: e.AssistName,
				IsPenalty:  e.IsPenalty,
			})
		}
		items[strconv.FormatInt(matchID, 10)] = views
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
