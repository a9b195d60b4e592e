package usecase

import (
	"context"
	"fmt"

	"github.com/pitchside/league-stats/internal/domain/league"
)

// ExportPayload is the standings view handed to the image renderer.
type ExportPayload struct {
	ChatID   int64           `json:"chat_id"`
	ThreadID int64           `json:"thread_id"`
	Title    string          `json:"title"`
	Rows     []ExportRow     `json:"rows"`
	Captains []ExportCaptain `json:"captains,omitempty"`
}

type ExportRow struct {
	Position  int      `json:"position"`
	Name      string   `json:"name"`
	Games     int      `json:"games"`
	Goals     int      `json:"goals"`
	Assists   int      `json:"assists"`
	Points    int      `json:"points"`
	GoalsDiff int      `json:"goals_diff"`
	AvgRating *float64 `json:"avg_rating,omitempty"`
	Form      []string `json:"form,omitempty"`
}

type ExportCaptain struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Games    int    `json:"games"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Losses   int    `json:"losses"`
	Points   int    `json:"points"`
}

// StandingsImageRenderer captures a rendered standings view as an image.
// Implemented by the boardshot client.
type StandingsImageRenderer interface {
	RenderStandings(ctx context.Context, payload ExportPayload) ([]byte, error)
}

// ExportService renders a league table into a shareable image through an
// external headless renderer.
type ExportService struct {
	standingsSvc *StandingsService
	captainSvc   *CaptainService
	renderer     StandingsImageRenderer
}

func NewExportService(
	standingsSvc *StandingsService,
	captainSvc *CaptainService,
	renderer StandingsImageRenderer,
) *ExportService {
	return &ExportService{
		standingsSvc: standingsSvc,
		captainSvc:   captainSvc,
		renderer:     renderer,
	}
}

// StandingsImage computes the current table and returns it rendered as PNG.
func (s *ExportService) StandingsImage(ctx context.Context, instance league.Instance, title string) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.StandingsImage")
	defer span.End()

	if s.renderer == nil {
		return nil, fmt.Errorf("%w: image renderer is not configured", ErrDependencyUnavailable)
	}

	rows, err := s.standingsSvc.Standings(ctx, instance, 0)
	if err != nil {
		return nil, err
	}
	captains, err := s.captainSvc.Ratings(ctx, instance)
	if err != nil {
		return nil, err
	}

	payload := ExportPayload{
		ChatID:   instance.ChatID,
		ThreadID: instance.ThreadID,
		Title:    title,
		Rows:     make([]ExportRow, 0, len(rows)),
		Captains: make([]ExportCaptain, 0, len(captains)),
	}
	for i, row := range rows {
		form := make([]string, 0, len(row.Form))
		for _, item := range row.Form {
			form = append(form, string(item.Result))
		}
		payload.Rows = append(payload.Rows, ExportRow{
			Position:  i + 1,
			Name:      row.Name,
			Games:     row.Games,
			Goals:     row.Goals,
			Assists:   row.Assists,
			Points:    row.Points,
			GoalsDiff: row.GoalsDiff,
			AvgRating: row.AvgRating,
			Form:      form,
		})
	}
	for i, captain := range captains {
		payload.Captains = append(payload.Captains, ExportCaptain{
			Position: i + 1,
			Name:     captain.Name,
			Games:    captain.Games,
			Wins:     captain.Wins,
			Draws:    captain.Draws,
			Losses:   captain.Losses,
			Points:   captain.Points,
		})
	}

	image, err := s.renderer.RenderStandings(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("render standings image: %w", err)
	}

	return image, nil
}
