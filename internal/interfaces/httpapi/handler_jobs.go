package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

func (h *Handler) RunPlayerSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunPlayerSyncJob")
	defer span.End()

	if h.playerSync == nil {
		writeError(ctx, w, fmt.Errorf("%w: player sync is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	result, err := h.playerSync.Sync(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "run player sync job failed", "run_id", result.RunID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSyncToDTO(result))
}
