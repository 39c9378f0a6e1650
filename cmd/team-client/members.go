package main

import (
	"bufio"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"team-member-service/internal/client/screen"
)

func newMembersCmd(a *app) *cobra.Command {
	membersCmd := &cobra.Command{
		Use:   "members",
		Short: "Manage team members",
	}

	membersCmd.AddCommand(
		newMembersListCmd(a),
		newMembersShowCmd(a),
		newMembersCreateCmd(a),
		newMembersUpdateCmd(a),
		newMembersDeleteCmd(a),
		newMembersAssignCmd(a),
	)
	return membersCmd
}

func newMembersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := screen.NewMemberList(a.deps)
			defer s.Close()

			if err := s.Load(a.context(cmd)); err != nil {
				return err
			}
			return s.Render(cmd.OutOrStdout())
		},
	}
}

func newMembersShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a team member with project and task names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := screen.NewMemberDetail(a.deps, args[0])
			defer s.Close()

			if err := s.Load(a.context(cmd)); err != nil {
				return err
			}
			return s.Render(cmd.OutOrStdout())
		},
	}
}

type draftFlags struct {
	name, role, email, description string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Member name")
	cmd.Flags().StringVar(&f.role, "role", "", "Member role")
	cmd.Flags().StringVar(&f.email, "email", "", "Member email")
	cmd.Flags().StringVar(&f.description, "description", "", "Free-form description")
}

// apply переносит в черновик только явно заданные флаги.
func (f *draftFlags) apply(cmd *cobra.Command, d screen.MemberDraft) screen.MemberDraft {
	if cmd.Flags().Changed("name") {
		d.Name = f.name
	}
	if cmd.Flags().Changed("role") {
		d.Role = f.role
	}
	if cmd.Flags().Changed("email") {
		d.Email = f.email
	}
	if cmd.Flags().Changed("description") {
		d.Description = f.description
	}
	return d
}

func newMembersCreateCmd(a *app) *cobra.Command {
	var f draftFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a team member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := screen.NewNewMember(a.deps)
			defer s.Close()

			created, err := s.Submit(a.context(cmd), f.apply(cmd, screen.MemberDraft{}))
			if err != nil {
				return err
			}

			// После создания открывается карточка нового участника.
			detail := screen.NewMemberDetail(a.deps, created.ID)
			defer detail.Close()
			if err := detail.Load(a.context(cmd)); err != nil {
				return err
			}
			return detail.Render(cmd.OutOrStdout())
		},
	}
	f.register(cmd)
	return cmd
}

func newMembersUpdateCmd(a *app) *cobra.Command {
	var f draftFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit name, role, email or description of a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := screen.NewMemberDetail(a.deps, args[0])
			defer s.Close()

			ctx := a.context(cmd)
			if err := s.Load(ctx); err != nil {
				return err
			}
			if err := s.Edit(); err != nil {
				return err
			}
			if err := s.Save(ctx, f.apply(cmd, screen.DraftFrom(s.Member()))); err != nil {
				return err
			}
			return s.Render(cmd.OutOrStdout())
		},
	}
	f.register(cmd)
	return cmd
}

func newMembersDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := screen.NewMemberDetail(a.deps, args[0])
			defer s.Close()

			ctx := a.context(cmd)
			if err := s.Load(ctx); err != nil {
				return err
			}

			if !yes {
				m := s.Member()
				fmt.Fprintf(cmd.ErrOrStderr(), "Delete %s (%s)? [y/N]: ", m.Name, m.ID)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if ans := strings.ToLower(strings.TrimSpace(answer)); ans != "y" && ans != "yes" {
					return errors.New("aborted")
				}
			}

			if err := s.Delete(ctx); err != nil {
				return err
			}
			return s.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newMembersAssignCmd(a *app) *cobra.Command {
	var projects, tasks []string
	cmd := &cobra.Command{
		Use:   "assign <id>",
		Short: "Replace the projects and tasks of a team member",
		Long: `Replace the projects and tasks of a team member with the given ids.
Ids are stored in the order given. Omitting a flag clears that list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := screen.NewAssign(a.deps, args[0])
			defer s.Close()

			ctx := a.context(cmd)
			if err := s.Load(ctx); err != nil {
				return err
			}
			// повторный id в аргументах не должен снимать отметку
			for _, id := range projects {
				if !slices.Contains(s.SelectedProjects(), id) {
					s.ToggleProject(id)
				}
			}
			for _, id := range tasks {
				if !slices.Contains(s.SelectedTasks(), id) {
					s.ToggleTask(id)
				}
			}
			if err := s.Save(ctx); err != nil {
				return err
			}
			return s.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringSliceVar(&projects, "project", nil, "Project id (repeatable)")
	cmd.Flags().StringSliceVar(&tasks, "task", nil, "Task id (repeatable)")
	return cmd
}
