package screen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-member-service/internal/model"
)

func TestNewMember_Submit(t *testing.T) {
	var gotInput model.MemberInput
	members := &fakeMembers{create: func(_ context.Context, in model.MemberInput) (model.TeamMember, error) {
		gotInput = in
		m := in.ToMember()
		m.ID = "new-1"
		return m, nil
	}}
	deps, notes := newDeps(members)

	s := NewNewMember(deps)
	defer s.Close()

	created, err := s.Submit(context.Background(), MemberDraft{Name: "Ana", Role: "QA", Email: "a@x.com"})
	require.NoError(t, err)

	assert.Equal(t, "new-1", created.ID)
	assert.Equal(t, model.MemberInput{Name: "Ana", Role: "QA", Email: "a@x.com"}, gotInput)
	assert.Equal(t, []string{}, created.AssociatedProjects)

	cached, ok := deps.Cache.Members.Get("new-1")
	require.True(t, ok)
	assert.Equal(t, created, cached)

	id, ok := s.Created()
	assert.True(t, ok)
	assert.Equal(t, "new-1", id)
	assert.Equal(t, []string{"Success"}, notes.Titles())
}

func TestNewMember_Validation(t *testing.T) {
	tests := []struct {
		name  string
		draft MemberDraft
	}{
		{name: "Missing name", draft: MemberDraft{Role: "QA", Email: "a@x.com"}},
		{name: "Missing role", draft: MemberDraft{Name: "Ana", Email: "a@x.com"}},
		{name: "Blank email", draft: MemberDraft{Name: "Ana", Role: "QA", Email: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := &fakeMembers{}
			deps, notes := newDeps(members)
			s := NewNewMember(deps)
			defer s.Close()

			_, err := s.Submit(context.Background(), tt.draft)

			assert.ErrorIs(t, err, ErrValidationMissing)
			assert.Empty(t, members.Calls())
			assert.Equal(t, []string{"Validation"}, notes.Titles())
			assert.Equal(t, 0, deps.Cache.Members.Len())
		})
	}
}

func TestNewMember_CreateFailure(t *testing.T) {
	deps, notes := newDeps(&fakeMembers{create: func(context.Context, model.MemberInput) (model.TeamMember, error) {
		return model.TeamMember{}, errors.New("boom")
	}})
	s := NewNewMember(deps)
	defer s.Close()

	_, err := s.Submit(context.Background(), MemberDraft{Name: "Ana", Role: "QA", Email: "a@x.com"})

	assert.Error(t, err)
	assert.False(t, s.Saving())
	_, ok := s.Created()
	assert.False(t, ok)
	assert.Equal(t, []string{"Error"}, notes.Titles())
}
