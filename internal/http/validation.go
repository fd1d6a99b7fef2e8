package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"lunch-break-service/internal/service"
)

// Ограничения длины совпадают с размерами колонок в миграции.
const (
	maxNameLen    = 100
	maxEmailLen   = 100
	maxContactLen = 20

	maxBodyBytes = 1 << 20
)

// parseID разбирает {id} из пути. Любое целое допустимо: несуществующий id,
// в том числе 0 или отрицательный, даст 404 на уровне сервиса.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, service.ErrBadRequest("id must be an integer")
	}
	return id, nil
}

func checkLen(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return service.ErrBadRequest(fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return nil
}

// Teams

// ValidateTeamName /api/v1/team — поле формы name, уже без пробелов по краям
func ValidateTeamName(name string) error {
	if name == "" {
		return service.ErrBadRequest("name is required")
	}
	return checkLen("name", name, maxNameLen)
}

// Persons

// ValidateCreatePersonRequest /api/v1/person — тело запроса после trimPersonRequest
func ValidateCreatePersonRequest(req createPersonRequest) error {
	if req.Name == "" {
		return service.ErrBadRequest("name is required")
	}
	if err := checkLen("name", req.Name, maxNameLen); err != nil {
		return err
	}
	if err := checkLen("email", req.Email, maxEmailLen); err != nil {
		return err
	}
	if req.Email != "" && !strings.Contains(req.Email, "@") {
		return service.ErrBadRequest("email must contain @")
	}
	return checkLen("contact", req.Contact, maxContactLen)
}

// trimPersonRequest убирает пробелы по краям, чтобы длины проверялись
// по тем значениям, которые попадут в базу.
func trimPersonRequest(req createPersonRequest) createPersonRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Contact = strings.TrimSpace(req.Contact)
	return req
}

// ValidateLunchBreakRequest POST /api/v1/person/{id} — тело запроса
func ValidateLunchBreakRequest(req lunchBreakRequest) error {
	// onLunchBreak — *bool, чтобы отличить false от отсутствующего поля
	if req.OnLunchBreak == nil {
		return service.ErrBadRequest("onLunchBreak is required")
	}
	return nil
}
