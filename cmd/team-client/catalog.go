package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app, use, short string) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	catalogCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows [][3]string
			switch use {
			case "projects":
				items, err := a.api.Projects().List(a.context(cmd))
				if err != nil {
					return err
				}
				a.deps.Cache.Projects.SetCollection(items)
				for _, p := range items {
					rows = append(rows, [3]string{p.ID, p.Name, p.Description})
				}
			default:
				items, err := a.api.Tasks().List(a.context(cmd))
				if err != nil {
					return err
				}
				a.deps.Cache.Tasks.SetCollection(items)
				for _, t := range items {
					rows = append(rows, [3]string{t.ID, t.Name, t.Description})
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r[0], r[1], r[2])
			}
			return tw.Flush()
		},
	})
	return catalogCmd
}
