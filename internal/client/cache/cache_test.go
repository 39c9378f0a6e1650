package cache

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-member-service/internal/model"
)

func member(id, name string) model.TeamMember {
	return model.TeamMember{ID: id, Name: name, AssociatedProjects: []string{}, AssociatedTasks: []string{}}
}

func TestCollection_SetCollectionFiltersEmptyIDs(t *testing.T) {
	s := NewStore()

	s.Members.SetCollection([]model.TeamMember{member("m1", "Ana"), member("", "Ghost"), member("m2", "Bo")})

	want := []model.TeamMember{member("m1", "Ana"), member("m2", "Bo")}
	if diff := cmp.Diff(want, s.Members.All()); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_Mutations(t *testing.T) {
	s := NewStore()
	s.Members.SetCollection([]model.TeamMember{member("m1", "Ana")})

	assert.True(t, s.Members.Add(member("m2", "Bo")))
	assert.False(t, s.Members.Add(member("", "nobody")))

	upd := member("m1", "Ana B.")
	upd.AssociatedProjects = []string{"p1"}
	assert.True(t, s.Members.Update(upd))
	assert.False(t, s.Members.Update(member("m9", "missing")))

	got, ok := s.Members.Get("m1")
	require.True(t, ok)
	assert.Equal(t, upd, got)

	assert.True(t, s.Members.Remove("m2"))
	assert.False(t, s.Members.Remove("m2"))

	want := []model.TeamMember{upd}
	if diff := cmp.Diff(want, s.Members.All()); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
	// SetCollection, Add, Update, Remove.
	assert.Equal(t, uint64(4), s.Members.Version())
}

func TestCollection_ReturnsCopies(t *testing.T) {
	s := NewStore()
	m := member("m1", "Ana")
	m.AssociatedTasks = []string{"t1"}
	s.Members.Add(m)

	m.AssociatedTasks[0] = "mutated"
	all := s.Members.All()
	all[0].AssociatedTasks[0] = "mutated too"
	all[0].Name = "changed"

	got, _ := s.Members.Get("m1")
	assert.Equal(t, []string{"t1"}, got.AssociatedTasks)
	assert.Equal(t, "Ana", got.Name)
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore()

	var calls atomic.Int32
	unsubscribe := s.Subscribe(func() {
		calls.Add(1)
		// подписчик может читать стор во время уведомления
		_ = s.Members.All()
	})

	s.Members.Add(member("m1", "Ana"))
	s.Projects.SetCollection([]model.Project{{ID: "p1", Name: "Alpha"}})
	s.Tasks.Remove("missing")
	assert.Equal(t, int32(2), calls.Load())

	unsubscribe()
	s.Members.Remove("m1")
	assert.Equal(t, int32(2), calls.Load())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Members.Add(member(string(rune('a'+i)), "x"))
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Members.All()
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, s.Members.Len())
}
