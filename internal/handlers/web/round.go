package web

import (
	"net/http"

	"github.com/KirkDiggler/ceelo/internal/services/messaging"
	"github.com/KirkDiggler/ceelo/internal/services/round"
)

// GetState returns the roster, results and leaderboard
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	out, err := h.roundService.GetRound(r.Context(), &round.GetRoundInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, toStateJSON(out.Round, out.Winner))
}

// Roll rolls for the named participant
func (h *Handler) Roll(w http.ResponseWriter, r *http.Request) {
	var req rollRequest
	if err := parseJSONBody(w, r, &req); err != nil {
		h.errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	out, err := h.roundService.Roll(r.Context(), &round.RollInput{Name: req.Name})
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := rollJSON{
		Name:      out.Name,
		Result:    toResultJSON(out.Outcome),
		stateJSON: toStateJSON(out.Round, out.Winner),
	}

	msg, err := h.messagingService.GetRollResultMessage(r.Context(), &messaging.GetRollResultMessageInput{
		PlayerName: out.Name,
		Outcome:    out.Outcome,
	})
	if err != nil {
		h.log.Warn("failed to build roll message", "name", out.Name, "error", err)
	} else {
		resp.Title = msg.Title
		resp.Message = msg.Message
	}

	if out.Winner.Ready {
		ann, err := h.messagingService.GetWinnerMessage(r.Context(), &messaging.GetWinnerMessageInput{
			Winner: out.Winner,
		})
		if err != nil {
			h.log.Warn("failed to build winner message", "error", err)
		} else {
			resp.Announcement = ann.Message
		}
	}

	h.jsonResponse(w, http.StatusOK, resp)
}
