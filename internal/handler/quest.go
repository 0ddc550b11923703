package handler

import (
	"net/http"

	"github.com/senseiarena/arena/internal/auth"
	"github.com/senseiarena/arena/internal/service"
)

// QuestHandler exposes quest progression state.
type QuestHandler struct {
	svc *service.ArenaService
}

func NewQuestHandler(svc *service.ArenaService) *QuestHandler {
	return &QuestHandler{svc: svc}
}

// Snapshot handles GET /quests: the full derived quest state for the
// authenticated account: per-quest status, progress percentages, unlocked
// categories, stats and totals.
func (h *QuestHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	accountID := auth.AccountFromContext(r.Context())

	snap, err := h.svc.Snapshot(r.Context(), accountID)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, snap)
}
