package http

import (
	"net/http"
	"strings"
)

func (h *Handler) handleTeamCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_create"

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	// PostFormValue понимает и urlencoded, и multipart
	name := strings.TrimSpace(r.PostFormValue("name"))
	if err := ValidateTeamName(name); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	team, err := h.Teams.CreateTeam(r.Context(), name)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toTeamResponse(team))
}

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	id, err := parseID(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	team, err := h.Teams.GetTeam(r.Context(), id)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toTeamWithMembersResponse(team))
}
