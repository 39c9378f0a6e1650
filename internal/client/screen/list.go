package screen

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"team-member-service/internal/model"
)

type ListState int

const (
	ListLoading ListState = iota
	ListEmpty
	ListPopulated
	ListFailed
)

func (s ListState) String() string {
	switch s {
	case ListEmpty:
		return "empty"
	case ListPopulated:
		return "populated"
	case ListFailed:
		return "failed"
	default:
		return "loading"
	}
}

// MemberRow: строка списка участников.
type MemberRow struct {
	ID   string
	Name string
	Role string
}

// MemberList: экран списка участников. Строки берутся из кэша,
// поэтому изменения с других экранов видны без перезагрузки.
type MemberList struct {
	*lifecycle
	d Deps

	loaded bool
	failed bool
}

func NewMemberList(d Deps) *MemberList {
	return &MemberList{lifecycle: newLifecycle(), d: d}
}

// Load загружает участников и кладёт их в кэш.
func (s *MemberList) Load(ctx context.Context) error {
	ctx, cancel := s.bind(ctx)
	defer cancel()

	s.commit(func() { s.failed = false })

	members, err := s.d.Members.List(ctx)
	if !s.commit(func() {
		s.loaded = err == nil
		s.failed = err != nil
	}) {
		return ErrClosed
	}
	if err != nil {
		s.d.Notifier.Notify("Error", "Could not load team members: "+describe(err))
		return err
	}

	s.d.Cache.Members.SetCollection(members)
	return nil
}

func (s *MemberList) State() ListState {
	var loaded, failed bool
	s.view(func() { loaded, failed = s.loaded, s.failed })

	switch {
	case failed:
		return ListFailed
	case !loaded:
		return ListLoading
	case s.d.Cache.Members.Len() == 0:
		return ListEmpty
	default:
		return ListPopulated
	}
}

func (s *MemberList) Rows() []MemberRow {
	members := s.d.Cache.Members.All()
	rows := make([]MemberRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, rowOf(m))
	}
	return rows
}

func rowOf(m model.TeamMember) MemberRow {
	return MemberRow{ID: m.ID, Name: m.Name, Role: m.Role}
}

// Render печатает список в виде таблицы.
func (s *MemberList) Render(w io.Writer) error {
	switch s.State() {
	case ListLoading:
		_, err := fmt.Fprintln(w, "Loading team members...")
		return err
	case ListFailed:
		_, err := fmt.Fprintln(w, "Team members could not be loaded.")
		return err
	case ListEmpty:
		_, err := fmt.Fprintln(w, "No team members yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROLE")
	for _, r := range s.Rows() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Name, r.Role)
	}
	return tw.Flush()
}
