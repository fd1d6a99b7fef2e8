package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"lunch-break-service/internal/model"
	"lunch-break-service/internal/service"
)

func (h *Handler) handlePersonCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "person_create"

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req createPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	req = trimPersonRequest(req)
	if err := ValidateCreatePersonRequest(req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	person, err := h.Persons.CreatePerson(r.Context(), model.Person{
		Name:    req.Name,
		TeamID:  req.TeamID,
		Email:   req.Email,
		Contact: req.Contact,
	})
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.Log.Debug("person created", slog.Int64("id", person.ID), slog.String("person", person.String()))
	w.Header().Set("Location", fmt.Sprintf("/api/v1/person/%d", person.ID))
	h.writeJSON(w, http.StatusOK, toPersonResponse(person))
}

func (h *Handler) handlePersonGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "person_get"

	id, err := parseID(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	person, err := h.Persons.GetPerson(r.Context(), id)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toPersonResponse(person))
}

func (h *Handler) handlePersonLunchBreak(w http.ResponseWriter, r *http.Request) {
	const handlerName = "person_lunch_break"

	id, err := parseID(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req lunchBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}
	if err := ValidateLunchBreakRequest(req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	person, err := h.Persons.SetLunchBreak(r.Context(), id, *req.OnLunchBreak)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toPersonResponse(person))
}

func (h *Handler) handlePersonDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "person_delete"

	id, err := parseID(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	if err := h.Persons.DeletePerson(r.Context(), id); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Data: "Person Deleted"})
}
