package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Browse published timetable versions",
	}

	cmd.AddCommand(
		newVersionsListCmd(),
		newVersionsCompareCmd(),
		newVersionsTrendsCmd(),
	)

	return cmd
}

func newVersionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List published versions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				versions, err := deps.Versions.HandleList(cmd.Context())
				if err != nil {
					return err
				}
				return render(versions, func() {
					if len(versions) == 0 {
						fmt.Println("No versions found.")
						return
					}
					for _, v := range versions {
						fmt.Printf("%s  %-20s %s", v.ID, v.Label, v.CreatedAt.Format("2006-01-02 15:04"))
						if v.CreatedBy != "" {
							fmt.Printf("  by %s", v.CreatedBy)
						}
						fmt.Println()
					}
				})
			})
		},
	}
}

func newVersionsCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <from-id> <to-id>",
		Short: "Diff two versions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				cmp, err := deps.Versions.HandleCompare(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return render(cmp, func() {
					fmt.Printf("%s -> %s\n", cmp.FromLabel, cmp.ToLabel)
					fmt.Printf("  Added: %d  Removed: %d  Changed: %d  (total %d)\n", cmp.Added, cmp.Removed, cmp.Changed, cmp.TotalChanges())
				})
			})
		},
	}
}

func newVersionsTrendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Show quality metrics across versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				points, err := deps.Versions.HandleTrends(cmd.Context())
				if err != nil {
					return err
				}
				return render(points, func() {
					if len(points) == 0 {
						fmt.Println("No trend data.")
						return
					}
					for _, p := range points {
						fmt.Printf("  %-20s satisfaction %5.2f  conflicts %d\n", p.Label, p.SatisfactionScore, p.ConflictCount)
					}
				})
			})
		},
	}
}
