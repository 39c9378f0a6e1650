// Package screen содержит контроллеры экранов клиента: список, карточка участника,
// создание и назначение проектов/задач. Контроллеры не знают о способе отрисовки:
// они держат состояние, пишут в кэш и сообщают пользователю через Notifier.
package screen

import (
	"context"
	"errors"
	"strings"
	"sync"

	"team-member-service/internal/client"
	"team-member-service/internal/client/cache"
	"team-member-service/internal/model"
)

var (
	ErrValidationMissing = errors.New("name, role and email are required")
	ErrBusy              = errors.New("another action is in progress")
	ErrClosed            = errors.New("screen closed")
	ErrInvalidState      = errors.New("action not allowed in current state")
	ErrMissingID         = errors.New("member id is required")
)

type MemberAPI interface {
	List(ctx context.Context) ([]model.TeamMember, error)
	Get(ctx context.Context, id string) (model.TeamMember, error)
	Create(ctx context.Context, in model.MemberInput) (model.TeamMember, error)
	Update(ctx context.Context, id string, patch model.MemberPatch) (model.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

type ProjectAPI interface {
	List(ctx context.Context) ([]model.Project, error)
}

type TaskAPI interface {
	List(ctx context.Context) ([]model.Task, error)
}

// Notifier показывает пользователю сообщение (диалог, строка в терминале).
type Notifier interface {
	Notify(title, text string)
}

// NotifierFunc позволяет использовать функцию как Notifier.
type NotifierFunc func(title, text string)

func (f NotifierFunc) Notify(title, text string) { f(title, text) }

// Deps: общие зависимости экранов.
type Deps struct {
	Members  MemberAPI
	Projects ProjectAPI
	Tasks    TaskAPI
	Cache    *cache.Store
	Notifier Notifier
}

// FromClient собирает Deps поверх шлюза API.
func FromClient(c *client.Client, store *cache.Store, n Notifier) Deps {
	return Deps{
		Members:  c.Members(),
		Projects: c.Projects(),
		Tasks:    c.Tasks(),
		Cache:    store,
		Notifier: n,
	}
}

// MemberDraft: редактируемые на экране поля участника.
type MemberDraft struct {
	Name        string
	Role        string
	Email       string
	Description string
}

// DraftFrom заполняет черновик из участника.
func DraftFrom(m model.TeamMember) MemberDraft {
	return MemberDraft{Name: m.Name, Role: m.Role, Email: m.Email, Description: m.Description}
}

// Validate проверяет обязательные поля: имя, роль и email.
func (d MemberDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Role) == "" || strings.TrimSpace(d.Email) == "" {
		return ErrValidationMissing
	}
	return nil
}

func (d MemberDraft) input() model.MemberInput {
	return model.MemberInput{Name: d.Name, Role: d.Role, Email: d.Email, Description: d.Description}
}

func (d MemberDraft) patch() model.MemberPatch {
	return model.MemberPatch{Name: &d.Name, Role: &d.Role, Email: &d.Email, Description: &d.Description}
}

// lifecycle отслеживает, открыт ли экран. После Close контекст экрана отменён,
// а результаты запоздавших вызовов отбрасываются: commit ничего не применяет.
// Состояние экрана меняется только внутри commit и читается через view;
// кэш и Notifier вызываются после успешного commit, вне блокировки,
// чтобы подписчики кэша могли читать экран.
type lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

func newLifecycle() *lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &lifecycle{ctx: ctx, cancel: cancel}
}

// Close закрывает экран. Повторный вызов безопасен.
func (l *lifecycle) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.cancel()
}

// Closed сообщает, закрыт ли экран.
func (l *lifecycle) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// bind связывает контекст вызова с контекстом экрана.
func (l *lifecycle) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(l.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (l *lifecycle) commit(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	fn()
	return true
}

func (l *lifecycle) view(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}

// describe превращает ошибку API в текст для пользователя.
func describe(err error) string {
	var apiErr *client.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

func upsertMember(store *cache.Store, m model.TeamMember) {
	if !store.Members.Update(m) {
		store.Members.Add(m)
	}
}
