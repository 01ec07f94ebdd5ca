package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Manage saved generation results",
	}

	cmd.AddCommand(
		newResultsSaveCmd(),
		newResultsShowCmd(),
		newResultsClearCmd(),
	)

	return cmd
}

func newResultsSaveCmd() *cobra.Command {
	var programID string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Save generator output locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				results, err := deps.Results.HandleSave(cmd.Context(), args[0], programID)
				if err != nil {
					return err
				}
				return render(results, func() {
					if results.Mode == entities.ResultsCycle {
						fmt.Printf("Saved results for %d terms.\n", len(results.Terms))
						return
					}
					fmt.Printf("Saved result %q.\n", results.Result.Label)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&programID, "program", "p", "", "Program id")

	return cmd
}

func newResultsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show saved generation results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				results, err := deps.Results.HandleShow(cmd.Context())
				if err != nil {
					return err
				}
				return render(results, func() {
					fmt.Printf("%s results, generated %s\n\n", results.Mode, results.GeneratedAt)
					if results.Result != nil {
						displayResult(*results.Result)
					}
					for _, term := range results.Terms {
						fmt.Printf("Term %d: ", term.TermNumber)
						displayResult(term.Result)
					}
				})
			})
		},
	}
}

func displayResult(r entities.GenerationResult) {
	fmt.Printf("%s  fitness %.3f  hard %d  soft %d  slots %d\n",
		r.Label, r.Fitness, r.HardConflicts, r.SoftConflicts, len(r.Payload.Timetable))
}

func newResultsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard saved generation results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				deps.Results.HandleClear(cmd.Context())
				fmt.Println("Results cleared.")
				return nil
			})
		},
	}
}
