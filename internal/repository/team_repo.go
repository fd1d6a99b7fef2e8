package repository

import (
	"context"
	"errors"
	"fmt"

	"lunch-break-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// TeamRepo реализует репозиторий команд на базе PostgreSQL.
type TeamRepo struct {
	db *Postgres
}

func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

// CreateTeam добавляет команду и возвращает её с присвоенным id.
// Имена команд не уникальны.
func (r *TeamRepo) CreateTeam(ctx context.Context, name string) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	var t model.Team
	err := q.QueryRow(ctx, `
INSERT INTO teams (name)
VALUES ($1)
RETURNING id, name
`, name).Scan(&t.ID, &t.Name)
	if err != nil {
		return model.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return t, nil
}

// GetTeamByID возвращает команду по id. Если команды нет, возвращает ErrTeamNotFound.
func (r *TeamRepo) GetTeamByID(ctx context.Context, id int64) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	var t model.Team
	err := q.QueryRow(ctx, `
SELECT id, name
FROM teams
WHERE id = $1
`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}
