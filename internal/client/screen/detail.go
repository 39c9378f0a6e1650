package screen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"team-member-service/internal/client"
	"team-member-service/internal/model"
)

type DetailState int

const (
	DetailLoading DetailState = iota
	DetailViewing
	DetailEditing
	DetailDeleted
	DetailFailed
)

func (s DetailState) String() string {
	switch s {
	case DetailViewing:
		return "viewing"
	case DetailEditing:
		return "editing"
	case DetailDeleted:
		return "deleted"
	case DetailFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Association: проект или задача участника в виде для отображения.
// Если справочник не знает id, Label равен "ID: <id>".
type Association struct {
	ID       string
	Label    string
	Resolved bool
}

// MemberDetail: карточка участника.
type MemberDetail struct {
	*lifecycle
	d  Deps
	id string

	state        DetailState
	saving       bool
	navigateBack bool
	member       model.TeamMember
	projectNames map[string]string
	taskNames    map[string]string
}

func NewMemberDetail(d Deps, id string) *MemberDetail {
	return &MemberDetail{lifecycle: newLifecycle(), d: d, id: id}
}

// Load показывает участника из кэша, если он там есть, иначе запрашивает его.
// Проекты и задачи загружаются параллельно; их ошибки не мешают показать карточку.
func (s *MemberDetail) Load(ctx context.Context) error {
	if s.id == "" {
		s.d.Notifier.Notify("Error", "Member id was not provided.")
		return ErrMissingID
	}

	ctx, cancel := s.bind(ctx)
	defer cancel()

	member, cached := s.d.Cache.Members.Get(s.id)

	var (
		projects []model.Project
		tasks    []model.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	if !cached {
		g.Go(func() error {
			m, err := s.d.Members.Get(gctx, s.id)
			if err != nil {
				return err
			}
			member = m
			return nil
		})
	}
	g.Go(func() error {
		if p, err := s.d.Projects.List(gctx); err == nil {
			projects = p
		}
		return nil
	})
	g.Go(func() error {
		if t, err := s.d.Tasks.List(gctx); err == nil {
			tasks = t
		}
		return nil
	})
	err := g.Wait()

	if !s.commit(func() {
		if err != nil {
			s.state = DetailFailed
			s.navigateBack = errors.Is(err, client.ErrNotFound) || errors.Is(err, client.ErrNetworkFailure)
			return
		}
		s.member = member
		s.projectNames = namesOf(projects)
		s.taskNames = namesOf(tasks)
		s.state = DetailViewing
	}) {
		return ErrClosed
	}

	switch {
	case err == nil:
	case errors.Is(err, client.ErrNotFound):
		s.d.Notifier.Notify("Member not found", "The member you tried to open no longer exists or was deleted.")
		return err
	case errors.Is(err, client.ErrNetworkFailure):
		s.d.Notifier.Notify("Connection error", "Could not reach the server. Check your connection and the API URL.")
		return err
	default:
		s.d.Notifier.Notify("API error", "Could not load member details: "+describe(err))
		return err
	}

	if projects != nil {
		s.d.Cache.Projects.SetCollection(projects)
	}
	if tasks != nil {
		s.d.Cache.Tasks.SetCollection(tasks)
	}
	return nil
}

type named interface {
	GetID() string
	GetName() string
}

func namesOf[T named](items []T) map[string]string {
	out := make(map[string]string, len(items))
	for _, it := range items {
		out[it.GetID()] = it.GetName()
	}
	return out
}

// Edit переводит карточку в режим редактирования.
func (s *MemberDetail) Edit() error {
	return s.transition(DetailViewing, DetailEditing)
}

// CancelEdit возвращает карточку в режим просмотра без сохранения.
func (s *MemberDetail) CancelEdit() error {
	return s.transition(DetailEditing, DetailViewing)
}

func (s *MemberDetail) transition(from, to DetailState) error {
	var err error
	if !s.commit(func() {
		switch {
		case s.saving:
			err = ErrBusy
		case s.state != from:
			err = ErrInvalidState
		default:
			s.state = to
		}
	}) {
		return ErrClosed
	}
	return err
}

// begin помечает начало сохранения или удаления.
func (s *MemberDetail) begin(allowed ...DetailState) error {
	var err error
	if !s.commit(func() {
		if s.saving {
			err = ErrBusy
			return
		}
		for _, st := range allowed {
			if s.state == st {
				s.saving = true
				return
			}
		}
		err = ErrInvalidState
	}) {
		return ErrClosed
	}
	return err
}

// Save проверяет черновик, отправляет изменения и обновляет кэш ответом сервера.
func (s *MemberDetail) Save(ctx context.Context, draft MemberDraft) error {
	if err := draft.Validate(); err != nil {
		s.d.Notifier.Notify("Validation", "Name, role and email are required.")
		return err
	}
	if err := s.begin(DetailEditing); err != nil {
		return err
	}

	ctx, cancel := s.bind(ctx)
	defer cancel()

	updated, err := s.d.Members.Update(ctx, s.id, draft.patch())

	if !s.commit(func() {
		s.saving = false
		if err == nil {
			s.member = updated
			s.state = DetailViewing
		}
	}) {
		return ErrClosed
	}
	if err != nil {
		s.d.Notifier.Notify("Error", "Could not update member: "+describe(err))
		return err
	}

	s.d.Cache.Members.Update(updated)
	s.d.Notifier.Notify("Success", "Member updated.")
	return nil
}

// Delete удаляет участника. Подтверждение: забота вызывающего.
func (s *MemberDetail) Delete(ctx context.Context) error {
	if err := s.begin(DetailViewing, DetailEditing); err != nil {
		return err
	}

	ctx, cancel := s.bind(ctx)
	defer cancel()

	err := s.d.Members.Delete(ctx, s.id)

	if !s.commit(func() {
		s.saving = false
		if err == nil {
			s.state = DetailDeleted
			s.navigateBack = true
		}
	}) {
		return ErrClosed
	}
	if err != nil {
		s.d.Notifier.Notify("Error", "Could not delete member: "+describe(err))
		return err
	}

	s.d.Cache.Members.Remove(s.id)
	s.d.Notifier.Notify("Success", "Member deleted.")
	return nil
}

func (s *MemberDetail) State() DetailState {
	var st DetailState
	s.view(func() { st = s.state })
	return st
}

// Saving сообщает, что идёт сохранение или удаление и действия недоступны.
func (s *MemberDetail) Saving() bool {
	var v bool
	s.view(func() { v = s.saving })
	return v
}

// NavigateBack сообщает, что экран нужно закрыть и вернуться к списку.
func (s *MemberDetail) NavigateBack() bool {
	var v bool
	s.view(func() { v = s.navigateBack })
	return v
}

func (s *MemberDetail) Member() model.TeamMember {
	var m model.TeamMember
	s.view(func() { m = s.member.Clone() })
	return m
}

func (s *MemberDetail) Projects() []Association {
	var out []Association
	s.view(func() { out = resolve(s.member.AssociatedProjects, s.projectNames) })
	return out
}

func (s *MemberDetail) Tasks() []Association {
	var out []Association
	s.view(func() { out = resolve(s.member.AssociatedTasks, s.taskNames) })
	return out
}

func resolve(ids []string, names map[string]string) []Association {
	out := make([]Association, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			out = append(out, Association{ID: id, Label: name, Resolved: true})
			continue
		}
		out = append(out, Association{ID: id, Label: "ID: " + id})
	}
	return out
}

// Render печатает карточку участника.
func (s *MemberDetail) Render(w io.Writer) error {
	switch s.State() {
	case DetailLoading:
		_, err := fmt.Fprintln(w, "Loading member...")
		return err
	case DetailFailed:
		_, err := fmt.Fprintln(w, "Member details are unavailable.")
		return err
	case DetailDeleted:
		_, err := fmt.Fprintln(w, "Member deleted.")
		return err
	}

	m := s.Member()
	var b strings.Builder
	fmt.Fprintf(&b, "ID:          %s\n", m.ID)
	fmt.Fprintf(&b, "Name:        %s\n", m.Name)
	fmt.Fprintf(&b, "Role:        %s\n", m.Role)
	fmt.Fprintf(&b, "Email:       %s\n", m.Email)
	fmt.Fprintf(&b, "Description: %s\n", m.Description)
	writeAssociations(&b, "Projects", s.Projects())
	writeAssociations(&b, "Tasks", s.Tasks())

	_, err := io.WriteString(w, b.String())
	return err
}

func writeAssociations(b *strings.Builder, title string, items []Association) {
	fmt.Fprintf(b, "%s:\n", title)
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, it := range items {
		fmt.Fprintf(b, "  - %s\n", it.Label)
	}
}
