package handler

import (
	"net/http"

	"github.com/senseiarena/arena/internal/auth"
	"github.com/senseiarena/arena/internal/service"
)

// StakeHandler handles direct staking.
type StakeHandler struct {
	svc *service.ArenaService
}

func NewStakeHandler(svc *service.ArenaService) *StakeHandler {
	return &StakeHandler{svc: svc}
}

type stakeRequest struct {
	Amount int64 `json:"amount"`
}

// DirectStake handles POST /stake: executes the ledger transaction and
// records the stake action against quest progress.
func (h *StakeHandler) DirectStake(w http.ResponseWriter, r *http.Request) {
	accountID := auth.AccountFromContext(r.Context())

	var req stakeRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	result, err := h.svc.DirectStake(r.Context(), accountID, req.Amount)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, result)
}
