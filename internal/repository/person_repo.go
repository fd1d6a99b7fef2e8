package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lunch-break-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PersonRepo реализует репозиторий сотрудников на базе PostgreSQL.
type PersonRepo struct {
	db *Postgres
}

// NewPersonRepo создаёт новый экземпляр PersonRepo c переданным подключением к PostgreSQL.
func NewPersonRepo(db *Postgres) *PersonRepo {
	return &PersonRepo{db: db}
}

// Пустые email и contact хранятся как NULL, чтобы UNIQUE не мешал сотрудникам без контактов.
const personColumns = `id, name, team_id, COALESCE(email, ''), COALESCE(contact, ''), on_lunch_break, started`

func scanPerson(row pgx.Row) (model.Person, error) {
	var p model.Person
	err := row.Scan(&p.ID, &p.Name, &p.TeamID, &p.Email, &p.Contact, &p.OnLunchBreak, &p.Started)
	if err == nil && p.Started != nil {
		// pgx отдаёт TIMESTAMPTZ в time.Local
		started := p.Started.UTC()
		p.Started = &started
	}
	return p, err
}

// CreatePerson добавляет сотрудника, не находящегося на перерыве.
// При конфликте по имени, email или контакту вернёт ErrPersonExists.
func (r *PersonRepo) CreatePerson(ctx context.Context, p model.Person) (model.Person, error) {
	q := r.db.GetQueryExecutor(ctx)

	created, err := scanPerson(q.QueryRow(ctx, `
INSERT INTO persons (name, team_id, email, contact, on_lunch_break, started)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), FALSE, NULL)
RETURNING `+personColumns, p.Name, p.TeamID, p.Email, p.Contact))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return model.Person{}, fmt.Errorf("%w: %s", ErrPersonExists, pgErr.ConstraintName)
		}
		return model.Person{}, fmt.Errorf("insert person: %w", err)
	}
	return created, nil
}

// GetPersonByID возвращает сотрудника по id. Если его нет, возвращает ErrPersonNotFound.
func (r *PersonRepo) GetPersonByID(ctx context.Context, id int64) (model.Person, error) {
	q := r.db.GetQueryExecutor(ctx)

	p, err := scanPerson(q.QueryRow(ctx, `SELECT `+personColumns+` FROM persons WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Person{}, ErrPersonNotFound
		}
		return model.Person{}, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

// SetLunchBreak одним UPDATE выставляет флаг перерыва и время его начала.
// started == nil очищает время начала. Если сотрудника нет, возвращает ErrPersonNotFound.
func (r *PersonRepo) SetLunchBreak(ctx context.Context, id int64, onLunchBreak bool, started *time.Time) (model.Person, error) {
	q := r.db.GetQueryExecutor(ctx)

	p, err := scanPerson(q.QueryRow(ctx, `
UPDATE persons
SET on_lunch_break = $2,
    started = $3
WHERE id = $1
RETURNING `+personColumns, id, onLunchBreak, started))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Person{}, ErrPersonNotFound
		}
		return model.Person{}, fmt.Errorf("update lunch break: %w", err)
	}
	return p, nil
}

// DeletePerson удаляет сотрудника. Если строка не найдена, возвращает ErrPersonNotFound.
func (r *PersonRepo) DeletePerson(ctx context.Context, id int64) error {
	q := r.db.GetQueryExecutor(ctx)

	cmdTag, err := q.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrPersonNotFound
	}
	return nil
}

// ListByTeam возвращает сотрудников, ссылающихся на команду, упорядоченных по id.
func (r *PersonRepo) ListByTeam(ctx context.Context, teamID int64) ([]model.Person, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, `SELECT `+personColumns+` FROM persons WHERE team_id = $1 ORDER BY id`, teamID)
	if err != nil {
		return nil, fmt.Errorf("query persons: %w", err)
	}
	defer rows.Close()

	res := make([]model.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}
