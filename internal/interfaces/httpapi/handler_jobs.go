package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/usecase"
)

type recomputeRequestDTO struct {
	MaxWorkers int `json:"max_workers" validate:"omitempty,gte=1,lte=16"`
}

type exportRequestDTO struct {
	ChatID   int64  `json:"chat_id" validate:"required"`
	ThreadID int64  `json:"thread_id"`
	Title    string `json:"title" validate:"omitempty,max=120"`
}

func (h *Handler) RunRecomputeJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecomputeJob")
	defer span.End()

	if h.recomputeService == nil {
		writeError(ctx, w, fmt.Errorf("%w: recompute service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	req := recomputeRequestDTO{}
	if err := h.decodeOptionalBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.recomputeService.WarmAll(ctx, usecase.RecomputeInput{MaxWorkers: req.MaxWorkers})
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) ExportStandingsImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportStandingsImage")
	defer span.End()

	if h.exportService == nil {
		writeError(ctx, w, fmt.Errorf("%w: export service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	req := exportRequestDTO{}
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	image, err := h.exportService.StandingsImage(ctx, league.Instance{ChatID: req.ChatID, ThreadID: req.ThreadID}, req.Title)
	if err != nil {
		h.logger.ErrorContext(ctx, "export standings image failed", "chat_id", req.ChatID, "thread_id", req.ThreadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image)
}

func (h *Handler) decodeBody(r *http.Request, dst any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()

	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", usecase.ErrInvalidInput)
	}
	if err := h.validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// decodeOptionalBody tolerates an empty body so internal jobs can be
// triggered with a bare POST.
func (h *Handler) decodeOptionalBody(r *http.Request, dst any) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: read request body", usecase.ErrInvalidInput)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil
	}

	if err := sonic.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: malformed request body", usecase.ErrInvalidInput)
	}
	if err := h.validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
