package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"lunch-break-service/internal/model"
	"lunch-break-service/internal/service"
)

// TeamService — операции над командами, которые нужны обработчикам.
type TeamService interface {
	CreateTeam(ctx context.Context, name string) (model.Team, error)
	GetTeam(ctx context.Context, id int64) (model.TeamWithMembers, error)
}

// PersonService — операции над сотрудниками, которые нужны обработчикам.
type PersonService interface {
	CreatePerson(ctx context.Context, p model.Person) (model.Person, error)
	GetPerson(ctx context.Context, id int64) (model.Person, error)
	SetLunchBreak(ctx context.Context, id int64, onLunchBreak bool) (model.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Teams   TeamService
	Persons PersonService
	DB      Pinger
	Log     *slog.Logger

	allowedOrigins []string
}

func NewHandler(teams TeamService, persons PersonService, db Pinger, log *slog.Logger, allowedOrigins []string) *Handler {
	return &Handler{
		Teams:          teams,
		Persons:        persons,
		DB:             db,
		Log:            log,
		allowedOrigins: allowedOrigins,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{"Location", requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", h.handleIndex)
	r.Get("/health", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Put("/team", h.handleTeamCreate)
		r.Get("/team/{id}", h.handleTeamGet)

		r.Put("/person", h.handlePersonCreate)
		r.Get("/person/{id}", h.handlePersonGet)
		r.Post("/person/{id}", h.handlePersonLunchBreak)
		r.Delete("/person/{id}", h.handlePersonDelete)
	})

	return r
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Error("failed to encode response", slog.Any("err", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrInternal("internal error", err)
	}

	level := slog.LevelWarn
	switch {
	case service.IsNotFound(appErr):
		level = slog.LevelInfo
	case appErr.Status >= http.StatusInternalServerError:
		level = slog.LevelError
	}
	h.Log.Log(r.Context(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("request_id", requestIDFrom(r.Context())),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	h.writeJSON(w, appErr.Status, resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		h.Log.Error("health check failed", slog.Any("err", err))
		h.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
