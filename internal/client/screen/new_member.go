package screen

import (
	"context"

	"team-member-service/internal/model"
)

// NewMember: экран добавления участника.
type NewMember struct {
	*lifecycle
	d Deps

	saving  bool
	created *model.TeamMember
}

func NewNewMember(d Deps) *NewMember {
	return &NewMember{lifecycle: newLifecycle(), d: d}
}

// Submit проверяет черновик, создаёт участника и добавляет его в кэш.
// Возвращённый участник: тот, чью карточку нужно открыть следующей.
func (s *NewMember) Submit(ctx context.Context, draft MemberDraft) (model.TeamMember, error) {
	if err := draft.Validate(); err != nil {
		s.d.Notifier.Notify("Validation", "Name, role and email are required.")
		return model.TeamMember{}, err
	}

	var busy bool
	if !s.commit(func() {
		busy = s.saving
		s.saving = true
	}) {
		return model.TeamMember{}, ErrClosed
	}
	if busy {
		return model.TeamMember{}, ErrBusy
	}

	ctx, cancel := s.bind(ctx)
	defer cancel()

	created, err := s.d.Members.Create(ctx, draft.input())

	if !s.commit(func() {
		s.saving = false
		if err == nil {
			s.created = &created
		}
	}) {
		return model.TeamMember{}, ErrClosed
	}
	if err != nil {
		s.d.Notifier.Notify("Error", "Could not add member: "+describe(err))
		return model.TeamMember{}, err
	}

	s.d.Cache.Members.Add(created)
	s.d.Notifier.Notify("Success", "Member added.")
	return created, nil
}

func (s *NewMember) Saving() bool {
	var v bool
	s.view(func() { v = s.saving })
	return v
}

// Created возвращает id созданного участника, если Submit прошёл успешно.
func (s *NewMember) Created() (string, bool) {
	var id string
	var ok bool
	s.view(func() {
		if s.created != nil {
			id, ok = s.created.ID, true
		}
	})
	return id, ok
}
