package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"team-member-service/internal/model"
)

// MemberRepo реализует репозиторий участников команды на базе PostgreSQL.
type MemberRepo struct {
	db *Postgres
}

// NewMemberRepo создаёт новый экземпляр MemberRepo c переданным подключением к PostgreSQL.
func NewMemberRepo(db *Postgres) *MemberRepo {
	return &MemberRepo{db: db}
}

const memberColumns = `id, name, role, email, description, associated_projects, associated_tasks`

func scanMember(row pgx.Row) (model.TeamMember, error) {
	var m model.TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.Description, &m.AssociatedProjects, &m.AssociatedTasks)
	if m.AssociatedProjects == nil {
		m.AssociatedProjects = make([]string, 0)
	}
	if m.AssociatedTasks == nil {
		m.AssociatedTasks = make([]string, 0)
	}
	return m, err
}

// List возвращает всех участников в порядке добавления.
func (r *MemberRepo) List(ctx context.Context) ([]model.TeamMember, error) {
	q := r.db.Executor(ctx)
	rows, err := q.Query(ctx, `SELECT `+memberColumns+` FROM team_members ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	members := make([]model.TeamMember, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return members, nil
}

// GetByID возвращает участника по id. Внутри транзакции строка блокируется
// до её завершения (SELECT ... FOR UPDATE).
// Если участник не найден, возвращает ErrMemberNotFound.
func (r *MemberRepo) GetByID(ctx context.Context, id string) (model.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE id = $1`
	if inTransaction(ctx) {
		query += ` FOR UPDATE`
	}

	m, err := scanMember(r.db.Executor(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TeamMember{}, ErrMemberNotFound
		}
		return model.TeamMember{}, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

// Insert сохраняет участника под новым uuid.
func (r *MemberRepo) Insert(ctx context.Context, m model.TeamMember) (model.TeamMember, error) {
	m = m.Clone()
	row := r.db.Executor(ctx).QueryRow(ctx, `
INSERT INTO team_members (id, name, role, email, description, associated_projects, associated_tasks)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+memberColumns,
		uuid.NewString(), m.Name, m.Role, m.Email, m.Description, m.AssociatedProjects, m.AssociatedTasks)

	created, err := scanMember(row)
	if err != nil {
		return model.TeamMember{}, fmt.Errorf("insert member: %w", err)
	}
	return created, nil
}

// Replace перезаписывает все поля участника, кроме id.
// Если участник не найден, возвращает ErrMemberNotFound.
func (r *MemberRepo) Replace(ctx context.Context, id string, m model.TeamMember) (model.TeamMember, error) {
	m = m.Clone()
	row := r.db.Executor(ctx).QueryRow(ctx, `
UPDATE team_members
SET name = $2,
    role = $3,
    email = $4,
    description = $5,
    associated_projects = $6,
    associated_tasks = $7
WHERE id = $1
RETURNING `+memberColumns,
		id, m.Name, m.Role, m.Email, m.Description, m.AssociatedProjects, m.AssociatedTasks)

	updated, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TeamMember{}, ErrMemberNotFound
		}
		return model.TeamMember{}, fmt.Errorf("update member: %w", err)
	}
	return updated, nil
}

// Remove удаляет участника. Если участник не найден, возвращает ErrMemberNotFound.
func (r *MemberRepo) Remove(ctx context.Context, id string) error {
	tag, err := r.db.Executor(ctx).Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}
