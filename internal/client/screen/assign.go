package screen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"team-member-service/internal/client"
	"team-member-service/internal/model"
)

// Assign: экран назначения проектов и задач участнику.
// Выбор хранится в порядке отметки.
type Assign struct {
	*lifecycle
	d        Deps
	memberID string

	loading  bool
	saving   bool
	done     bool
	projects []model.Project
	tasks    []model.Task
	selP     []string
	selT     []string
}

// NewAssign создаёт экран. Если участник уже в кэше, его текущие связи
// становятся начальным выбором.
func NewAssign(d Deps, memberID string) *Assign {
	s := &Assign{lifecycle: newLifecycle(), d: d, memberID: memberID, loading: true}
	if m, ok := d.Cache.Members.Get(memberID); ok {
		s.selP = uniqueIDs(m.AssociatedProjects)
		s.selT = uniqueIDs(m.AssociatedTasks)
	}
	return s
}

// Load загружает проекты и задачи параллельно.
func (s *Assign) Load(ctx context.Context) error {
	ctx, cancel := s.bind(ctx)
	defer cancel()

	var (
		projects []model.Project
		tasks    []model.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.d.Projects.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.d.Tasks.List(gctx)
		return err
	})
	err := g.Wait()

	if !s.commit(func() {
		s.loading = false
		if err == nil {
			s.projects = projects
			s.tasks = tasks
		}
	}) {
		return ErrClosed
	}
	if err != nil {
		s.d.Notifier.Notify("Error", "Could not load projects and tasks.")
		return err
	}

	s.d.Cache.Projects.SetCollection(projects)
	s.d.Cache.Tasks.SetCollection(tasks)
	return nil
}

// ToggleProject отмечает или снимает проект. Возвращает новое состояние отметки.
func (s *Assign) ToggleProject(id string) bool {
	var on bool
	s.commit(func() { s.selP, on = toggle(s.selP, id) })
	return on
}

// ToggleTask отмечает или снимает задачу. Возвращает новое состояние отметки.
func (s *Assign) ToggleTask(id string) bool {
	var on bool
	s.commit(func() { s.selT, on = toggle(s.selT, id) })
	return on
}

func toggle(sel []string, id string) ([]string, bool) {
	if slices.Contains(sel, id) {
		return slices.DeleteFunc(slices.Clone(sel), func(v string) bool { return v == id }), false
	}
	return append(slices.Clone(sel), id), true
}

// uniqueIDs оставляет первое вхождение каждого id, сохраняя порядок.
func uniqueIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Save перечитывает участника и записывает ему выбранные связи.
func (s *Assign) Save(ctx context.Context) error {
	var (
		busy       bool
		selP, selT []string
	)
	if !s.commit(func() {
		busy = s.saving
		s.saving = true
		selP, selT = slices.Clone(s.selP), slices.Clone(s.selT)
	}) {
		return ErrClosed
	}
	if busy {
		return ErrBusy
	}

	ctx, cancel := s.bind(ctx)
	defer cancel()

	updated, err := s.save(ctx, selP, selT)

	if !s.commit(func() {
		s.saving = false
		s.done = err == nil
	}) {
		return ErrClosed
	}
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			s.d.Notifier.Notify("Error", "Member not found for assignment.")
		} else {
			s.d.Notifier.Notify("Error", "Could not save associations: "+describe(err))
		}
		return err
	}

	upsertMember(s.d.Cache, updated)
	s.d.Notifier.Notify("Success", "Associations saved.")
	return nil
}

func (s *Assign) save(ctx context.Context, projects, tasks []string) (model.TeamMember, error) {
	if _, err := s.d.Members.Get(ctx, s.memberID); err != nil {
		return model.TeamMember{}, err
	}
	if projects == nil {
		projects = []string{}
	}
	if tasks == nil {
		tasks = []string{}
	}
	return s.d.Members.Update(ctx, s.memberID, model.MemberPatch{
		AssociatedProjects: &projects,
		AssociatedTasks:    &tasks,
	})
}

func (s *Assign) SelectedProjects() []string {
	var out []string
	s.view(func() { out = slices.Clone(s.selP) })
	return out
}

func (s *Assign) SelectedTasks() []string {
	var out []string
	s.view(func() { out = slices.Clone(s.selT) })
	return out
}

func (s *Assign) Loading() bool {
	var v bool
	s.view(func() { v = s.loading })
	return v
}

func (s *Assign) Saving() bool {
	var v bool
	s.view(func() { v = s.saving })
	return v
}

// Done сообщает, что связи сохранены и экран можно закрыть.
func (s *Assign) Done() bool {
	var v bool
	s.view(func() { v = s.done })
	return v
}

// Render печатает проекты и задачи с отметками выбора.
func (s *Assign) Render(w io.Writer) error {
	var b strings.Builder
	s.view(func() {
		if s.loading {
			b.WriteString("Loading projects and tasks...\n")
			return
		}
		b.WriteString("Projects:\n")
		for _, p := range s.projects {
			fmt.Fprintf(&b, "  %s %s (%s)\n", mark(slices.Contains(s.selP, p.ID)), p.Name, p.ID)
		}
		b.WriteString("Tasks:\n")
		for _, t := range s.tasks {
			fmt.Fprintf(&b, "  %s %s (%s)\n", mark(slices.Contains(s.selT, t.ID)), t.Name, t.ID)
		}
	})
	_, err := io.WriteString(w, b.String())
	return err
}

func mark(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
