package handler

import (
	"net/http"

	"github.com/senseiarena/arena/internal/auth"
	"github.com/senseiarena/arena/internal/service"
)

// ProfileHandler handles avatar, badge equipment and progress reset.
type ProfileHandler struct {
	svc *service.ArenaService
}

func NewProfileHandler(svc *service.ArenaService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type avatarRequest struct {
	AvatarID string `json:"avatarId"`
}

// SetAvatar handles PUT /profile/avatar.
func (h *ProfileHandler) SetAvatar(w http.ResponseWriter, r *http.Request) {
	accountID := auth.AccountFromContext(r.Context())

	var req avatarRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	if err := h.svc.SetAvatar(r.Context(), accountID, req.AvatarID); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]string{"avatarId": req.AvatarID})
}

type badgeRequest struct {
	Badge string `json:"badge"`
}

// EquipBadge handles PUT /profile/badge: only badges actually earned can
// be equipped.
func (h *ProfileHandler) EquipBadge(w http.ResponseWriter, r *http.Request) {
	accountID := auth.AccountFromContext(r.Context())

	var req badgeRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	if err := h.svc.EquipBadge(r.Context(), accountID, req.Badge); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]string{"badge": req.Badge})
}

// UnequipBadge handles DELETE /profile/badge.
func (h *ProfileHandler) UnequipBadge(w http.ResponseWriter, r *http.Request) {
	accountID := auth.AccountFromContext(r.Context())

	if err := h.svc.UnequipBadge(r.Context(), accountID); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}

// Reset handles POST /profile/reset: wipes all quest progress for the
// account.
func (h *ProfileHandler) Reset(w http.ResponseWriter, r *http.Request) {
	accountID := auth.AccountFromContext(r.Context())

	if err := h.svc.Reset(r.Context(), accountID); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}
