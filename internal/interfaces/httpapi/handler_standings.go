package httpapi

import (
	"net/http"
	"sort"
	"time"

	"github.com/pitchside/league-stats/internal/usecase"
)

type instanceDTO struct {
	ChatID   int64 `json:"chat_id"`
	ThreadID int64 `json:"thread_id"`
}

type formStatsDTO struct {
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	YellowCards int     `json:"yellow_cards"`
	RedCards    int     `json:"red_cards"`
	Rating      float64 `json:"rating"`
	IsCaptain   bool    `json:"is_captain"`
}

type formItemDTO struct {
	Result    string        `json:"result"`
	Score     string        `json:"score"`
	MatchDate time.Time     `json:"match_date"`
	Stats     *formStatsDTO `json:"stats,omitempty"`
}

type standingRowDTO struct {
	Position     int           `json:"position"`
	PlayerID     int64         `json:"player_id"`
	Name         string        `json:"name"`
	Games        int           `json:"games"`
	Goals        int           `json:"goals"`
	Autogoals    int           `json:"autogoals"`
	Assists      int           `json:"assists"`
	YellowCards  int           `json:"yellow_cards"`
	RedCards     int           `json:"red_cards"`
	BestDefender int           `json:"best_defender"`
	Points       int           `json:"points"`
	GoalsDiff    int           `json:"goals_diff"`
	AvgRating    *float64      `json:"avg_rating,omitempty"`
	Form         []formItemDTO `json:"form"`
}

type defenderCountDTO struct {
	PlayerID int64 `json:"player_id"`
	Count    int   `json:"count"`
}

func (h *Handler) ListInstances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListInstances")
	defer span.End()

	instances, err := h.instanceService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list instances failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]instanceDTO, 0, len(instances))
	for _, instance := range instances {
		items = append(items, instanceDTO{ChatID: instance.ChatID, ThreadID: instance.ThreadID})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	instance, err := instanceFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query, err := h.standingsQueryFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingsService.Standings(ctx, instance, query.Window)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "chat_id", instance.ChatID, "thread_id", instance.ThreadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingRowDTO, 0, len(rows))
	for i, row := range rows {
		form := make([]formItemDTO, 0, len(row.Form))
		for _, item := range row.Form {
			form = append(form, formItemToDTO(item))
		}
		items = append(items, standingRowDTO{
			Position:     i + 1,
			PlayerID:     row.PlayerID,
			Name:         row.Name,
			Games:        row.Games,
			Goals:        row.Goals,
			Autogoals:    row.Autogoals,
			Assists:      row.Assists,
			YellowCards:  row.YellowCards,
			RedCards:     row.RedCards,
			BestDefender: row.BestDefender,
			Points:       row.Points,
			GoalsDiff:    row.GoalsDiff,
			AvgRating:    row.AvgRating,
			Form:         form,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDefenderCounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDefenderCounts")
	defer span.End()

	instance, err := instanceFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	counts, err := h.standingsService.DefenderCounts(ctx, instance)
	if err != nil {
		h.logger.WarnContext(ctx, "get defender counts failed", "chat_id", instance.ChatID, "thread_id", instance.ThreadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]defenderCountDTO, 0, len(counts))
	for playerID, count := range counts {
		items = append(items, defenderCountDTO{PlayerID: playerID, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].PlayerID < items[j].PlayerID
	})

	writeSuccess(ctx, w, http.StatusOK, items)
}

func formItemToDTO(item usecase.FormItem) formItemDTO {
	dto := formItemDTO{
		Result:    string(item.Result),
		Score:     item.MatchScore,
		MatchDate: item.MatchDate,
	}
	if item.Stats != nil {
		dto.Stats = &formStatsDTO{
			Goals:       item.Stats.Goals,
			Assists:     item.Stats.Assists,
			YellowCards: item.Stats.YellowCards,
			RedCards:    item.Stats.RedCards,
			Rating:      item.Stats.Rating,
			IsCaptain:   item.Stats.IsCaptain,
		}
	}
	return dto
}

