// Package service содержит бизнес-логику работы с участниками команды и справочниками.
package service

import (
	"context"
	"errors"

	"team-member-service/internal/model"
	"team-member-service/internal/repository"
)

// Сообщения, которые уходят клиенту в теле ответа.
const (
	MsgMemberNotFound = "team member not found"
	MsgMemberDeleted  = "team member deleted"
)

// MemberRepository описывает контракт хранилища участников для бизнес-слоя.
type MemberRepository interface {
	List(ctx context.Context) ([]model.TeamMember, error)
	GetByID(ctx context.Context, id string) (model.TeamMember, error)
	Insert(ctx context.Context, m model.TeamMember) (model.TeamMember, error)
	Replace(ctx context.Context, id string, m model.TeamMember) (model.TeamMember, error)
	Remove(ctx context.Context, id string) error
}

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MemberService реализует CRUD над участниками команды.
// Сервер не валидирует поля: отсутствующие значения становятся пустыми.
type MemberService struct {
	repo      MemberRepository
	txManager TransactionManager
}

// NewMemberService создаёт сервис участников.
func NewMemberService(repo MemberRepository, txManager TransactionManager) *MemberService {
	return &MemberService{repo: repo, txManager: txManager}
}

// List возвращает всех участников в порядке добавления.
func (s *MemberService) List(ctx context.Context) ([]model.TeamMember, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list team members", err)
	}
	return members, nil
}

// Get возвращает участника по id.
func (s *MemberService) Get(ctx context.Context, id string) (model.TeamMember, error) {
	if id == "" {
		return model.TeamMember{}, ErrBadRequest("id is required")
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.TeamMember{}, mapMemberErr(err, "failed to get team member")
	}
	return m, nil
}

// Create добавляет участника; id выдаёт хранилище.
func (s *MemberService) Create(ctx context.Context, in model.MemberInput) (model.TeamMember, error) {
	m, err := s.repo.Insert(ctx, in.ToMember())
	if err != nil {
		return model.TeamMember{}, ErrInternal("failed to create team member", err)
	}
	return m, nil
}

// Update накладывает патч поверх сохранённого участника и перезаписывает его целиком.
// Чтение и запись выполняются в одной транзакции; при гонке побеждает последняя запись.
func (s *MemberService) Update(ctx context.Context, id string, patch model.MemberPatch) (model.TeamMember, error) {
	if id == "" {
		return model.TeamMember{}, ErrBadRequest("id is required")
	}

	var updated model.TeamMember
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		updated, err = s.repo.Replace(ctx, id, patch.Apply(current))
		return err
	})
	if err != nil {
		return model.TeamMember{}, mapMemberErr(err, "failed to update team member")
	}
	return updated, nil
}

// Delete удаляет участника по id.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrBadRequest("id is required")
	}
	if err := s.repo.Remove(ctx, id); err != nil {
		return mapMemberErr(err, "failed to delete team member")
	}
	return nil
}

func mapMemberErr(err error, internalMsg string) error {
	if errors.Is(err, repository.ErrMemberNotFound) {
		return ErrNotFound(MsgMemberNotFound)
	}
	return ErrInternal(internalMsg, err)
}
