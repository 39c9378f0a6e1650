package service

import (
	"context"
	"errors"

	"team-member-service/internal/model"
	"team-member-service/internal/repository"
)

// ProjectRepository описывает справочник проектов.
type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id string) (model.Project, error)
}

// TaskRepository описывает справочник задач.
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	GetByID(ctx context.Context, id string) (model.Task, error)
}

// CatalogService отдаёт проекты и задачи только на чтение.
type CatalogService struct {
	projects ProjectRepository
	tasks    TaskRepository
}

func NewCatalogService(projects ProjectRepository, tasks TaskRepository) *CatalogService {
	return &CatalogService{projects: projects, tasks: tasks}
}

func (s *CatalogService) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list projects", err)
	}
	return projects, nil
}

func (s *CatalogService) GetProject(ctx context.Context, id string) (model.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return model.Project{}, ErrNotFound("project not found")
		}
		return model.Project{}, ErrInternal("failed to get project", err)
	}
	return p, nil
}

func (s *CatalogService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list tasks", err)
	}
	return tasks, nil
}

func (s *CatalogService) GetTask(ctx context.Context, id string) (model.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.Task{}, ErrNotFound("task not found")
		}
		return model.Task{}, ErrInternal("failed to get task", err)
	}
	return t, nil
}
