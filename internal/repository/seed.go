package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"gopkg.in/yaml.v3"

	"team-member-service/internal/model"
)

// Seed: начальные данные, которыми заполняется хранилище при старте.
type Seed struct {
	Members  []SeedMember    `yaml:"members"`
	Projects []model.Project `yaml:"projects"`
	Tasks    []model.Task    `yaml:"tasks"`
}

// SeedMember описывает демонстрационного участника в YAML-фикстуре.
type SeedMember struct {
	Name               string   `yaml:"name"`
	Role               string   `yaml:"role"`
	Email              string   `yaml:"email"`
	Description        string   `yaml:"description"`
	AssociatedProjects []string `yaml:"associatedProjects"`
	AssociatedTasks    []string `yaml:"associatedTasks"`
}

// Inputs переводит участников фикстуры в MemberInput.
func (s Seed) Inputs() []model.MemberInput {
	out := make([]model.MemberInput, 0, len(s.Members))
	for _, m := range s.Members {
		out = append(out, model.MemberInput{
			Name:               m.Name,
			Role:               m.Role,
			Email:              m.Email,
			Description:        m.Description,
			AssociatedProjects: m.AssociatedProjects,
			AssociatedTasks:    m.AssociatedTasks,
		})
	}
	return out
}

// LoadSeed читает фикстуру из файла path или встроенную, если path пуст.
// Проектам и задачам без id выдаются новые uuid.
func LoadSeed(path string) (Seed, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Seed{}, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}
	return ParseSeed(data)
}

// ParseSeed разбирает YAML-фикстуру.
func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	for i := range s.Projects {
		if s.Projects[i].ID == "" {
			s.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range s.Tasks {
		if s.Tasks[i].ID == "" {
			s.Tasks[i].ID = uuid.NewString()
		}
	}
	return s, nil
}

// SeedPostgres заполняет пустые таблицы данными фикстуры.
// Уже заполненные таблицы не трогаются, поэтому перезапуск сервиса безопасен.
func SeedPostgres(ctx context.Context, db *Postgres, seed Seed, withMembers bool) error {
	q := db.Executor(ctx)

	empty := func(table string) (bool, error) {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+`)`).Scan(&exists); err != nil {
			return false, fmt.Errorf("check %s: %w", table, err)
		}
		return !exists, nil
	}

	batch := &pgx.Batch{}

	if ok, err := empty("projects"); err != nil {
		return err
	} else if ok {
		for _, p := range seed.Projects {
			batch.Queue(`INSERT INTO projects (id, name, description) VALUES ($1, $2, $3)`, p.ID, p.Name, p.Description)
		}
	}

	if ok, err := empty("tasks"); err != nil {
		return err
	} else if ok {
		for _, t := range seed.Tasks {
			batch.Queue(`INSERT INTO tasks (id, name, description) VALUES ($1, $2, $3)`, t.ID, t.Name, t.Description)
		}
	}

	if withMembers {
		if ok, err := empty("team_members"); err != nil {
			return err
		} else if ok {
			for _, in := range seed.Inputs() {
				m := in.ToMember()
				batch.Queue(`
INSERT INTO team_members (id, name, role, email, description, associated_projects, associated_tasks)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, uuid.NewString(), m.Name, m.Role, m.Email, m.Description, m.AssociatedProjects, m.AssociatedTasks)
			}
		}
	}

	if batch.Len() == 0 {
		return nil
	}
	br := q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
