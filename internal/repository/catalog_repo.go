package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"team-member-service/internal/model"
)

// ProjectRepo читает проекты из PostgreSQL.
type ProjectRepo struct {
	db *Postgres
}

func NewProjectRepo(db *Postgres) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.db.Executor(ctx).Query(ctx, `SELECT id, name, description FROM projects ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (model.Project, error) {
	var p model.Project
	err := r.db.Executor(ctx).
		QueryRow(ctx, `SELECT id, name, description FROM projects WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, ErrProjectNotFound
		}
		return model.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// TaskRepo читает задачи из PostgreSQL.
type TaskRepo struct {
	db *Postgres
}

func NewTaskRepo(db *Postgres) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.Executor(ctx).Query(ctx, `SELECT id, name, description FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (model.Task, error) {
	var t model.Task
	err := r.db.Executor(ctx).
		QueryRow(ctx, `SELECT id, name, description FROM tasks WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, ErrTaskNotFound
		}
		return model.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}
