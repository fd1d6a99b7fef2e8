// Package service содержит бизнес-логику операций над командами и сотрудниками.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"lunch-break-service/internal/model"
	"lunch-break-service/internal/repository"
)

const personNotFound = "Person Not Found"

// PersonRepository описывает контракт репозитория сотрудников для бизнес-слоя.
type PersonRepository interface {
	CreatePerson(ctx context.Context, p model.Person) (model.Person, error)
	GetPersonByID(ctx context.Context, id int64) (model.Person, error)
	SetLunchBreak(ctx context.Context, id int64, onLunchBreak bool, started *time.Time) (model.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// PersonService содержит бизнес-логику, связанную с сотрудниками
// и их обеденными перерывами.
type PersonService struct {
	repo PersonRepository
	now  func() time.Time
}

// PersonServiceOption настраивает PersonService.
type PersonServiceOption func(*PersonService)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) PersonServiceOption {
	return func(s *PersonService) {
		s.now = now
	}
}

// NewPersonService создаёт новый сервис для операций над сотрудниками.
func NewPersonService(repo PersonRepository, opts ...PersonServiceOption) *PersonService {
	s := &PersonService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePerson создаёт сотрудника вне перерыва.
// Конфликт по имени, email или контакту превращается в PERSON_EXISTS.
func (s *PersonService) CreatePerson(ctx context.Context, p model.Person) (model.Person, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Contact = strings.TrimSpace(p.Contact)
	if p.Name == "" {
		return model.Person{}, ErrBadRequest("name is required")
	}

	created, err := s.repo.CreatePerson(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrPersonExists) {
			return model.Person{}, ErrDomain(CodePersonExists, "person with the same name, email or contact already exists", err)
		}
		return model.Person{}, ErrInternal("failed to create person", err)
	}
	return created, nil
}

// GetPerson возвращает сотрудника по id.
func (s *PersonService) GetPerson(ctx context.Context, id int64) (model.Person, error) {
	p, err := s.repo.GetPersonByID(ctx, id)
	if err != nil {
		return model.Person{}, mapPersonErr("failed to get person", err)
	}
	return p, nil
}

// SetLunchBreak начинает (onLunchBreak == true) или заканчивает перерыв.
// Начало перерыва фиксирует текущее время в UTC, окончание очищает его.
func (s *PersonService) SetLunchBreak(ctx context.Context, id int64, onLunchBreak bool) (model.Person, error) {
	var started *time.Time
	if onLunchBreak {
		now := s.now().UTC()
		started = &now
	}

	p, err := s.repo.SetLunchBreak(ctx, id, onLunchBreak, started)
	if err != nil {
		return model.Person{}, mapPersonErr("failed to update lunch break", err)
	}
	return p, nil
}

// DeletePerson удаляет сотрудника по id.
func (s *PersonService) DeletePerson(ctx context.Context, id int64) error {
	if err := s.repo.DeletePerson(ctx, id); err != nil {
		return mapPersonErr("failed to delete person", err)
	}
	return nil
}

func mapPersonErr(msg string, err error) error {
	if errors.Is(err, repository.ErrPersonNotFound) {
		return ErrNotFound(personNotFound)
	}
	return ErrInternal(msg, err)
}
