package service

import (
	"context"
	"errors"
	"strings"

	"lunch-break-service/internal/model"
	"lunch-break-service/internal/repository"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TeamRepository описывает контракт репозитория команд для бизнес-слоя.
type TeamRepository interface {
	CreateTeam(ctx context.Context, name string) (model.Team, error)
	GetTeamByID(ctx context.Context, id int64) (model.Team, error)
}

// MemberLister отдаёт сотрудников команды.
type MemberLister interface {
	ListByTeam(ctx context.Context, teamID int64) ([]model.Person, error)
}

// TeamService содержит бизнес-логику по созданию и получению команд.
type TeamService struct {
	repo      TeamRepository
	members   MemberLister
	txManager TransactionManager
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(repo TeamRepository, members MemberLister, txManager TransactionManager) *TeamService {
	return &TeamService{
		repo:      repo,
		members:   members,
		txManager: txManager,
	}
}

// CreateTeam создаёт команду. Дубликаты имён допускаются.
func (s *TeamService) CreateTeam(ctx context.Context, name string) (model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Team{}, ErrBadRequest("name is required")
	}

	team, err := s.repo.CreateTeam(ctx, name)
	if err != nil {
		return model.Team{}, ErrInternal("failed to create team", err)
	}
	return team, nil
}

// GetTeam возвращает команду и её сотрудников. Оба чтения идут в одной
// read-only транзакции, поэтому состав соответствует строке команды.
func (s *TeamService) GetTeam(ctx context.Context, id int64) (model.TeamWithMembers, error) {
	var res model.TeamWithMembers

	err := s.txManager.RunReadOnly(ctx, func(ctx context.Context) error {
		team, err := s.repo.GetTeamByID(ctx, id)
		if err != nil {
			return err
		}
		members, err := s.members.ListByTeam(ctx, id)
		if err != nil {
			return err
		}
		res = model.TeamWithMembers{Team: team, Members: members}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.TeamWithMembers{}, ErrNotFound("Team Not Found")
		}
		return model.TeamWithMembers{}, ErrInternal("failed to get team", err)
	}
	return res, nil
}
