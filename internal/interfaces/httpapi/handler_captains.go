package httpapi

import "net/http"

type captainRowDTO struct {
	Position      int    `json:"position"`
	PlayerID      int64  `json:"player_id"`
	Name          string `json:"name"`
	Games         int    `json:"games"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	Points        int    `json:"points"`
	GoalsScored   int    `json:"goals_scored"`
	GoalsConceded int    `json:"goals_conceded"`
	GoalsDiff     int    `json:"goals_diff"`
}

func (h *Handler) GetCaptainRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCaptainRatings")
	defer span.End()

	instance, err := instanceFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.captainService.Ratings(ctx, instance)
	if err != nil {
		h.logger.WarnContext(ctx, "get captain ratings failed", "chat_id", instance.ChatID, "thread_id", instance.ThreadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]captainRowDTO, 0, len(rows))
	for i, row := range rows {
		items = append(items, captainRowDTO{
			Position:      i + 1,
			PlayerID:      row.PlayerID,
			Name:          row.Name,
			Games:         row.Games,
			Wins:          row.Wins,
			Draws:         row.Draws,
			Losses:        row.Losses,
			Points:        row.Points,
			GoalsScored:   row.GoalsScored,
			GoalsConceded: row.GoalsConceded,
			GoalsDiff:     row.GoalsDiff,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
