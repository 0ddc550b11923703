package handler

import (
	"net/http"

	"github.com/senseiarena/arena/internal/service"
)

// SessionHandler handles account connection.
type SessionHandler struct {
	svc *service.ArenaService
}

func NewSessionHandler(svc *service.ArenaService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

type connectRequest struct {
	AccountID string `json:"accountId"`
}

// Connect handles POST /connect: verifies the ledger account, records a
// login action and returns a session token with the initial snapshot.
func (h *SessionHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	result, err := h.svc.Connect(r.Context(), req.AccountID)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, result)
}
