package web

import (
	"net/http"

	"github.com/KirkDiggler/ceelo/internal/services/admin"
	"github.com/KirkDiggler/ceelo/internal/services/round"
)

// Login exchanges the admin password for a bearer token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := parseJSONBody(w, r, &req); err != nil {
		h.errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	out, err := h.adminService.Login(r.Context(), &admin.LoginInput{Password: req.Password})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, loginJSON{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
	})
}

// Logout revokes the caller's token
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.Logout(r.Context(), &admin.LogoutInput{Token: bearerToken(r)}); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reset clears every result in the round
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	out, err := h.roundService.ResetRound(r.Context(), &round.ResetRoundInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, toStateJSON(out.Round, out.Winner))
}

// SetFriends replaces the roster
func (h *Handler) SetFriends(w http.ResponseWriter, r *http.Request) {
	var req friendsRequest
	if err := parseJSONBody(w, r, &req); err != nil {
		h.errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	out, err := h.roundService.SetRoster(r.Context(), &round.SetRosterInput{Names: req.Friends})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, toStateJSON(out.Round, out.Winner))
}
