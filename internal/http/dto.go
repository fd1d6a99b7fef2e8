// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"time"

	"lunch-break-service/internal/model"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// messageResponse — подтверждение без тела сущности, например {"data": "Person Deleted"}.
type messageResponse struct {
	Data string `json:"data"`
}

type teamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type teamWithMembersResponse struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	Members []memberResponse `json:"members"`
}

type createPersonRequest struct {
	Name    string `json:"name"`
	TeamID  *int64 `json:"teamId"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type lunchBreakRequest struct {
	OnLunchBreak *bool `json:"onLunchBreak"`
}

// personResponse не содержит id: клиент узнаёт его из заголовка Location.
type personResponse struct {
	Name         string     `json:"name"`
	TeamID       *int64     `json:"teamId"`
	Email        string     `json:"email"`
	Contact      string     `json:"contact"`
	OnLunchBreak bool       `json:"onLunchBreak"`
	Started      *time.Time `json:"started"`
}

type memberResponse struct {
	ID int64 `json:"id"`
	personResponse
}

func toTeamResponse(t model.Team) teamResponse {
	return teamResponse{ID: t.ID, Name: t.Name}
}

func toPersonResponse(p model.Person) personResponse {
	if p.Started != nil {
		started := p.Started.UTC()
		p.Started = &started
	}
	return personResponse{
		Name:         p.Name,
		TeamID:       p.TeamID,
		Email:        p.Email,
		Contact:      p.Contact,
		OnLunchBreak: p.OnLunchBreak,
		Started:      p.Started,
	}
}

func toTeamWithMembersResponse(t model.TeamWithMembers) teamWithMembersResponse {
	members := make([]memberResponse, 0, len(t.Members))
	for _, p := range t.Members {
		members = append(members, memberResponse{ID: p.ID, personResponse: toPersonResponse(p)})
	}
	return teamWithMembersResponse{
		ID:      t.ID,
		Name:    t.Name,
		Members: members,
	}
}
