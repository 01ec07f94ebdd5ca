package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/timetable-sync/internal/application/handlers"
	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

func newConflictsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Inspect and resolve timetable conflicts",
	}

	cmd.AddCommand(
		newConflictsListCmd(),
		newConflictsAnalyzeCmd(),
		newConflictsResolveCmd(),
		newConflictsDecideCmd(),
	)

	return cmd
}

func newConflictsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List conflicts in the official timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				report, err := deps.Conflicts.HandleList(cmd.Context())
				if err != nil {
					return err
				}
				return render(report, func() { displayReport(report) })
			})
		},
	}
}

func newConflictsAnalyzeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Run backend conflict analysis",
		Long:  "Analyzes a timetable file, or the official timetable when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateChoice("format", format, validFormats); err != nil {
				return err
			}
			src := handlers.PayloadSource{Format: format}
			if len(args) == 1 {
				src.Path = args[0]
			}
			return withDeps(cmd.Context(), func(deps *Deps) error {
				report, err := deps.Conflicts.HandleAnalyze(cmd.Context(), src)
				if err != nil {
					return err
				}
				return render(report, func() { displayReport(report) })
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "Input format: auto, json, csv")

	return cmd
}

func newConflictsResolveCmd() *cobra.Command {
	var (
		action entities.ResolutionAction
		params map[string]string
	)

	cmd := &cobra.Command{
		Use:   "resolve <conflict-id>",
		Short: "Apply a resolution action to a conflict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action.Parameters = make(map[string]any, len(params))
			for k, v := range params {
				action.Parameters[k] = v
			}
			return withDeps(cmd.Context(), func(deps *Deps) error {
				result, err := deps.Conflicts.HandleResolve(cmd.Context(), args[0], action)
				if err != nil {
					return err
				}
				return render(result, func() {
					if !result.Success {
						fmt.Printf("Not resolved: %s\n", result.Message)
						return
					}
					fmt.Println(result.Message)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&action.ActionType, "action", "a", "", "Action type (required)")
	cmd.Flags().StringVar(&action.TargetSlotID, "slot", "", "Target slot id")
	cmd.Flags().StringVarP(&action.Description, "description", "d", "", "Action description")
	cmd.Flags().StringToStringVar(&params, "param", nil, "Action parameter key=value (repeatable)")
	_ = cmd.MarkFlagRequired("action")

	return cmd
}

func newConflictsDecideCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "decide <conflict-id> <yes|no>",
		Short: "Answer a conflict prompt",
		Long:  "Submits a yes/no decision. The backend may republish the timetable as a result.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				result, err := deps.Versions.HandleDecide(cmd.Context(), args[0], entities.Decision(args[1]), note)
				if err != nil {
					return err
				}
				return render(result, func() {
					fmt.Println(result.Message)
					if result.RepublishedVersion != "" {
						fmt.Printf("Republished as %s\n", result.RepublishedVersion)
					}
				})
			})
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "Note attached to the decision")

	return cmd
}
