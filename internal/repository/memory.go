package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"team-member-service/internal/model"
)

// MemoryMemberRepo хранит участников в памяти процесса в порядке добавления.
// Данные живут, пока жив процесс.
type MemoryMemberRepo struct {
	mu      sync.RWMutex
	members []model.TeamMember
	newID   func() string
}

// NewMemoryMemberRepo создаёт репозиторий и добавляет в него начальных участников,
// выдавая им новые идентификаторы.
func NewMemoryMemberRepo(initial ...model.MemberInput) *MemoryMemberRepo {
	r := &MemoryMemberRepo{
		members: make([]model.TeamMember, 0, len(initial)),
		newID:   uuid.NewString,
	}
	for _, in := range initial {
		m := in.ToMember()
		m.ID = r.newID()
		r.members = append(r.members, m)
	}
	return r
}

// List возвращает копию всех участников в порядке добавления.
func (r *MemoryMemberRepo) List(_ context.Context) ([]model.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.TeamMember, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m.Clone())
	}
	return out, nil
}

// GetByID возвращает участника по id или ErrMemberNotFound.
func (r *MemoryMemberRepo) GetByID(_ context.Context, id string) (model.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexLocked(id)
	if i < 0 {
		return model.TeamMember{}, ErrMemberNotFound
	}
	return r.members[i].Clone(), nil
}

// Insert всегда выдаёт новый id, игнорируя переданный.
func (r *MemoryMemberRepo) Insert(_ context.Context, m model.TeamMember) (model.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := m.Clone()
	stored.ID = r.newID()
	r.members = append(r.members, stored)
	return stored.Clone(), nil
}

// Replace полностью заменяет запись с данным id. id записи сохраняется.
func (r *MemoryMemberRepo) Replace(_ context.Context, id string, m model.TeamMember) (model.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return model.TeamMember{}, ErrMemberNotFound
	}
	stored := m.Clone()
	stored.ID = id
	r.members[i] = stored
	return stored.Clone(), nil
}

// Remove удаляет участника по id.
func (r *MemoryMemberRepo) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return ErrMemberNotFound
	}
	r.members = append(r.members[:i], r.members[i+1:]...)
	return nil
}

func (r *MemoryMemberRepo) indexLocked(id string) int {
	for i := range r.members {
		if r.members[i].ID == id {
			return i
		}
	}
	return -1
}

// MemoryCatalogRepo: неизменяемый справочник (проекты или задачи) в памяти.
type MemoryCatalogRepo[T interface{ GetID() string }] struct {
	items    []T
	notFound error
}

// NewMemoryProjectRepo создаёт справочник проектов.
func NewMemoryProjectRepo(projects []model.Project) *MemoryCatalogRepo[model.Project] {
	return newMemoryCatalogRepo(projects, ErrProjectNotFound)
}

// NewMemoryTaskRepo создаёт справочник задач.
func NewMemoryTaskRepo(tasks []model.Task) *MemoryCatalogRepo[model.Task] {
	return newMemoryCatalogRepo(tasks, ErrTaskNotFound)
}

func newMemoryCatalogRepo[T interface{ GetID() string }](items []T, notFound error) *MemoryCatalogRepo[T] {
	own := make([]T, len(items))
	copy(own, items)
	return &MemoryCatalogRepo[T]{items: own, notFound: notFound}
}

// List возвращает копию справочника.
func (r *MemoryCatalogRepo[T]) List(_ context.Context) ([]T, error) {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID ищет запись линейным проходом.
func (r *MemoryCatalogRepo[T]) GetByID(_ context.Context, id string) (T, error) {
	for _, it := range r.items {
		if it.GetID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, r.notFound
}
