package handler

import (
	"net/http"

	"github.com/senseiarena/arena/internal/auth"
	"github.com/senseiarena/arena/internal/domain"
	"github.com/senseiarena/arena/internal/games"
	"github.com/senseiarena/arena/internal/service"
)

// GameHandler settles finished game sessions.
type GameHandler struct {
	svc *service.ArenaService
}

func NewGameHandler(svc *service.ArenaService) *GameHandler {
	return &GameHandler{svc: svc}
}

type outcomeRequest struct {
	GameType    domain.GameType `json:"gameType"`
	Result      games.Result    `json:"result"`
	StakeAmount int64           `json:"stakeAmount"`
	RawScore    int             `json:"rawScore"`
}

type outcomeResponse struct {
	Staked bool                 `json:"staked"`
	Stake  *service.StakeResult `json:"stake,omitempty"`
}

// SubmitOutcome handles POST /games/outcome: stakes any outcome carrying
// a positive amount, recording a game win for winning and partial results
// and a plain stake for partial-credit losses. Draws and zero-stake
// outcomes acknowledge without touching the ledger.
func (h *GameHandler) SubmitOutcome(w http.ResponseWriter, r *http.Request) {
	accountID := auth.AccountFromContext(r.Context())

	var req outcomeRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}
	switch req.Result {
	case games.ResultWin, games.ResultPartial, games.ResultLoss, games.ResultDraw:
	default:
		RespondError(w, domain.ErrValidation("unknown game result: "+string(req.Result)))
		return
	}
	if req.StakeAmount < 0 {
		RespondError(w, domain.ErrValidation("stake amount must not be negative"))
		return
	}

	result, err := h.svc.SubmitOutcome(r.Context(), accountID, games.Outcome{
		GameType:    req.GameType,
		Result:      req.Result,
		StakeAmount: req.StakeAmount,
		RawScore:    req.RawScore,
	})
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, outcomeResponse{
		Staked: result != nil,
		Stake:  result,
	})
}
