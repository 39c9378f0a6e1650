package screen

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-member-service/internal/client"
	"team-member-service/internal/model"
)

func TestMemberDetail_LoadPrefersCache(t *testing.T) {
	members := &fakeMembers{}
	deps, _ := newDeps(members)
	deps.Cache.Members.Add(ana())

	s := NewMemberDetail(deps, "m1")
	defer s.Close()

	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, members.Calls())
	assert.Equal(t, DetailViewing, s.State())
	assert.Equal(t, "Ana", s.Member().Name)
	assert.Equal(t, 2, deps.Cache.Projects.Len())
}

func TestMemberDetail_LoadFetchesAndResolvesNames(t *testing.T) {
	members := &fakeMembers{get: func(_ context.Context, id string) (model.TeamMember, error) {
		m := ana()
		m.AssociatedTasks = []string{"t2"}
		return m, nil
	}}
	deps, notes := newDeps(members)

	s := NewMemberDetail(deps, "m1")
	defer s.Close()

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, []string{"Get m1"}, members.Calls())
	assert.Equal(t, []Association{
		{ID: "p1", Label: "Alpha", Resolved: true},
		{ID: "ghost", Label: "ID: ghost"},
	}, s.Projects())
	assert.Equal(t, []Association{{ID: "t2", Label: "Fix login", Resolved: true}}, s.Tasks())
	assert.Empty(t, notes.Titles())

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	assert.Contains(t, buf.String(), "ID: ghost")
	assert.Contains(t, buf.String(), "Fix login")
}

func TestMemberDetail_CatalogFailureStillShowsMember(t *testing.T) {
	deps, _ := newDeps(&fakeMembers{})
	deps.Projects = fakeList[model.Project]{err: errors.New("boom")}
	deps.Cache.Members.Add(ana())

	s := NewMemberDetail(deps, "m1")
	defer s.Close()

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, DetailViewing, s.State())
	assert.Equal(t, "ID: p1", s.Projects()[0].Label)
}

func TestMemberDetail_LoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
		wantBack  bool
	}{
		{
			name:      "Not found",
			err:       &client.Error{Kind: client.KindNotFound, Status: http.StatusNotFound, Message: "team member not found"},
			wantTitle: "Member not found",
			wantBack:  true,
		},
		{
			name:      "Network failure",
			err:       &client.Error{Kind: client.KindNetworkFailure, Err: errors.New("connection refused")},
			wantTitle: "Connection error",
			wantBack:  true,
		},
		{
			name:      "Unexpected",
			err:       &client.Error{Kind: client.KindUnexpected, Status: http.StatusInternalServerError},
			wantTitle: "API error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, notes := newDeps(&fakeMembers{get: func(context.Context, string) (model.TeamMember, error) {
				return model.TeamMember{}, tt.err
			}})

			s := NewMemberDetail(deps, "gone")
			defer s.Close()

			err := s.Load(context.Background())
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, DetailFailed, s.State())
			assert.Equal(t, tt.wantBack, s.NavigateBack())
			assert.Equal(t, []string{tt.wantTitle}, notes.Titles())
		})
	}
}

func TestMemberDetail_MissingID(t *testing.T) {
	deps, notes := newDeps(&fakeMembers{})
	s := NewMemberDetail(deps, "")
	defer s.Close()

	assert.ErrorIs(t, s.Load(context.Background()), ErrMissingID)
	assert.Equal(t, []string{"Error"}, notes.Titles())
}

func TestMemberDetail_EditAndSave(t *testing.T) {
	var gotPatch model.MemberPatch
	members := &fakeMembers{update: func(_ context.Context, id string, p model.MemberPatch) (model.TeamMember, error) {
		gotPatch = p
		m := p.Apply(ana())
		return m, nil
	}}
	deps, notes := newDeps(members)
	deps.Cache.Members.Add(ana())

	s := NewMemberDetail(deps, "m1")
	defer s.Close()
	require.NoError(t, s.Load(context.Background()))

	assert.ErrorIs(t, s.Save(context.Background(), DraftFrom(ana())), ErrInvalidState)
	require.NoError(t, s.Edit())
	assert.Equal(t, DetailEditing, s.State())

	draft := DraftFrom(s.Member())
	draft.Email = "  "
	assert.ErrorIs(t, s.Save(context.Background(), draft), ErrValidationMissing)
	assert.Equal(t, DetailEditing, s.State())

	draft.Email = "ana@x.com"
	draft.Role = "Lead"
	require.NoError(t, s.Save(context.Background(), draft))

	assert.Equal(t, DetailViewing, s.State())
	assert.Equal(t, strPtr("Lead"), gotPatch.Role)
	assert.Nil(t, gotPatch.AssociatedProjects)

	cached, ok := deps.Cache.Members.Get("m1")
	require.True(t, ok)
	assert.Equal(t, "Lead", cached.Role)
	assert.Equal(t, "ana@x.com", cached.Email)
	assert.Equal(t, []string{"p1", "ghost"}, cached.AssociatedProjects)
	assert.Equal(t, []string{"Validation", "Success"}, notes.Titles())
}

func TestMemberDetail_SaveFailureKeepsEditing(t *testing.T) {
	deps, notes := newDeps(&fakeMembers{update: func(context.Context, string, model.MemberPatch) (model.TeamMember, error) {
		return model.TeamMember{}, &client.Error{Kind: client.KindUnexpected, Status: http.StatusInternalServerError, Message: "failed to update team member"}
	}})
	deps.Cache.Members.Add(ana())

	s := NewMemberDetail(deps, "m1")
	defer s.Close()
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Edit())

	draft := DraftFrom(ana())
	draft.Name = "Ana B."
	assert.Error(t, s.Save(context.Background(), draft))

	assert.Equal(t, DetailEditing, s.State())
	assert.False(t, s.Saving())
	cached, _ := deps.Cache.Members.Get("m1")
	assert.Equal(t, "Ana", cached.Name)
	assert.Equal(t, []string{"Error"}, notes.Titles())
}

func TestMemberDetail_BusyWhileSaving(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	deps, _ := newDeps(&fakeMembers{update: func(_ context.Context, _ string, p model.MemberPatch) (model.TeamMember, error) {
		close(started)
		<-release
		return p.Apply(ana()), nil
	}})
	deps.Cache.Members.Add(ana())

	s := NewMemberDetail(deps, "m1")
	defer s.Close()
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Edit())

	done := make(chan error, 1)
	go func() { done <- s.Save(context.Background(), DraftFrom(ana())) }()
	<-started

	assert.True(t, s.Saving())
	assert.ErrorIs(t, s.Save(context.Background(), DraftFrom(ana())), ErrBusy)
	assert.ErrorIs(t, s.Delete(context.Background()), ErrBusy)
	assert.ErrorIs(t, s.CancelEdit(), ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, s.Saving())
}

func TestMemberDetail_Delete(t *testing.T) {
	deps, notes := newDeps(&fakeMembers{del: func(context.Context, string) error { return nil }})
	deps.Cache.Members.Add(ana())

	s := NewMemberDetail(deps, "m1")
	defer s.Close()
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.Delete(context.Background()))

	assert.Equal(t, DetailDeleted, s.State())
	assert.True(t, s.NavigateBack())
	_, ok := deps.Cache.Members.Get("m1")
	assert.False(t, ok)
	assert.Equal(t, []string{"Success"}, notes.Titles())

	assert.ErrorIs(t, s.Delete(context.Background()), ErrInvalidState)
	assert.ErrorIs(t, s.Edit(), ErrInvalidState)
}

func TestMemberDetail_DiscardsResultAfterClose(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	deps, notes := newDeps(&fakeMembers{get: func(context.Context, string) (model.TeamMember, error) {
		close(started)
		<-release
		return ana(), nil
	}})

	s := NewMemberDetail(deps, "m1")

	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background()) }()
	<-started

	s.Close()
	close(release)

	assert.ErrorIs(t, <-done, ErrClosed)
	assert.Equal(t, DetailLoading, s.State())
	assert.Equal(t, 0, deps.Cache.Projects.Len())
	assert.Empty(t, notes.Titles())
}

func TestMemberDetail_CloseCancelsInFlightCall(t *testing.T) {
	started := make(chan struct{})
	deps, _ := newDeps(&fakeMembers{get: func(ctx context.Context, _ string) (model.TeamMember, error) {
		close(started)
		<-ctx.Done()
		return model.TeamMember{}, ctx.Err()
	}})

	s := NewMemberDetail(deps, "m1")

	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background()) }()
	<-started

	s.Close()
	assert.ErrorIs(t, <-done, ErrClosed)
	assert.True(t, s.Closed())
}
