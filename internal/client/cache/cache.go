// Package cache хранит клиентское состояние: загруженные участники, проекты и задачи.
// Экраны читают данные отсюда и подписываются на изменения.
package cache

import (
	"sync"

	"team-member-service/internal/model"
)

// Identifiable: запись с идентификатором.
type Identifiable interface {
	GetID() string
}

// Collection: упорядоченный набор записей одного типа.
// Каждое изменение строит новый слайс и увеличивает версию.
type Collection[T Identifiable] struct {
	mu       sync.RWMutex
	items    []T
	version  uint64
	clone    func(T) T
	onChange func()
}

func newCollection[T Identifiable](clone func(T) T, onChange func()) *Collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Collection[T]{items: []T{}, clone: clone, onChange: onChange}
}

// SetCollection заменяет содержимое. Записи с пустым id отбрасываются.
func (c *Collection[T]) SetCollection(items []T) {
	next := make([]T, 0, len(items))
	for _, it := range items {
		if it.GetID() == "" {
			continue
		}
		next = append(next, c.clone(it))
	}

	c.mu.Lock()
	c.items = next
	c.version++
	c.mu.Unlock()

	c.changed()
}

// Add добавляет запись в конец. Запись без id игнорируется.
func (c *Collection[T]) Add(item T) bool {
	if item.GetID() == "" {
		return false
	}

	c.mu.Lock()
	next := make([]T, 0, len(c.items)+1)
	next = append(next, c.items...)
	c.items = append(next, c.clone(item))
	c.version++
	c.mu.Unlock()

	c.changed()
	return true
}

// Update заменяет запись с тем же id, если она есть.
func (c *Collection[T]) Update(item T) bool {
	id := item.GetID()

	c.mu.Lock()
	i := c.indexLocked(id)
	if id == "" || i < 0 {
		c.mu.Unlock()
		return false
	}
	next := make([]T, len(c.items))
	copy(next, c.items)
	next[i] = c.clone(item)
	c.items = next
	c.version++
	c.mu.Unlock()

	c.changed()
	return true
}

// Remove удаляет запись по id.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	i := c.indexLocked(id)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	next := make([]T, 0, len(c.items)-1)
	next = append(next, c.items[:i]...)
	c.items = append(next, c.items[i+1:]...)
	c.version++
	c.mu.Unlock()

	c.changed()
	return true
}

// Get возвращает запись по id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexLocked(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

// All возвращает копию всех записей.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, c.clone(it))
	}
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Collection[T]) indexLocked(id string) int {
	for i := range c.items {
		if c.items[i].GetID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Store объединяет коллекции и рассылает уведомления подписчикам.
type Store struct {
	Members  *Collection[model.TeamMember]
	Projects *Collection[model.Project]
	Tasks    *Collection[model.Task]

	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

func NewStore() *Store {
	s := &Store{subs: make(map[int]func())}
	s.Members = newCollection(model.TeamMember.Clone, s.notify)
	s.Projects = newCollection[model.Project](nil, s.notify)
	s.Tasks = newCollection[model.Task](nil, s.notify)
	return s
}

// Subscribe регистрирует fn, вызываемую после каждого изменения.
// Возвращает функцию отписки.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// notify вызывает подписчиков вне блокировок, чтобы они могли читать стор.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
