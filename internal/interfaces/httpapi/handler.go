package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/platform/logging"
	"github.com/pitchside/league-stats/internal/usecase"
)

type Handler struct {
	instanceService  *usecase.InstanceService
	standingsService *usecase.StandingsService
	captainService   *usecase.CaptainService
	eventService     *usecase.EventService
	exportService    *usecase.ExportService
	recomputeService *usecase.RecomputeService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	instanceService *usecase.InstanceService,
	standingsService *usecase.StandingsService,
	captainService *usecase.CaptainService,
	eventService *usecase.EventService,
	exportService *usecase.ExportService,
	recomputeService *usecase.RecomputeService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		instanceService:  instanceService,
		standingsService: standingsService,
		captainService:   captainService,
		eventService:     eventService,
		exportService:    exportService,
		recomputeService: recomputeService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// instanceFromRequest reads the chat id path segment and the optional
// thread_id query parameter. Chat ids are signed: group chats are negative.
func instanceFromRequest(r *http.Request) (league.Instance, error) {
	chatID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("chatID")), 10, 64)
	if err != nil || chatID == 0 {
		return league.Instance{}, fmt.Errorf("%w: chat id must be a non-zero integer", usecase.ErrInvalidInput)
	}

	instance := league.Instance{ChatID: chatID}
	if raw := strings.TrimSpace(r.URL.Query().Get("thread_id")); raw != "" {
		threadID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return league.Instance{}, fmt.Errorf("%w: thread_id must be an integer", usecase.ErrInvalidInput)
		}
		instance.ThreadID = threadID
	}

	return instance, nil
}

type standingsQuery struct {
	Window int `validate:"omitempty,gte=1,lte=50"`
}

func (h *Handler) standingsQueryFromRequest(r *http.Request) (standingsQuery, error) {
	query := standingsQuery{}
	if raw := strings.TrimSpace(r.URL.Query().Get("window")); raw != "" {
		window, err := strconv.Atoi(raw)
		if err != nil {
			return standingsQuery{}, fmt.Errorf("%w: window must be an integer", usecase.ErrInvalidInput)
		}
		query.Window = window
	}

	if err := h.validator.Struct(query); err != nil {
		return standingsQuery{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return query, nil
}
