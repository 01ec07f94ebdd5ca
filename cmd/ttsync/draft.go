package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/timetable-sync/internal/application/handlers"
	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

func newDraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage the local draft timetable",
	}

	cmd.AddCommand(
		newDraftSaveCmd(),
		newDraftShowCmd(),
		newDraftCheckCmd(),
		newDraftPublishCmd(),
		newDraftClearCmd(),
	)

	return cmd
}

func newDraftSaveCmd() *cobra.Command {
	var (
		format      string
		source      string
		fromResults bool
		opts        handlers.DraftOptions
	)

	cmd := &cobra.Command{
		Use:   "save [file]",
		Short: "Save a timetable as the local draft",
		Long: `Saves a timetable file as the draft, replacing any existing one.
With --from-results the draft is taken from the saved generation results;
--term picks the term of a multi-term result.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromResults == (len(args) == 1) {
				return errors.New("give either a file or --from-results")
			}
			return withDeps(cmd.Context(), func(deps *Deps) error {
				var (
					draft *entities.GeneratedDraftSnapshot
					err   error
				)
				if fromResults {
					draft, err = deps.Drafts.HandleSaveFromResults(cmd.Context(), opts.TermNumber)
				} else {
					if err := validateChoice("format", format, validFormats); err != nil {
						return err
					}
					if err := validateChoice("source", source, validSources); err != nil {
						return err
					}
					opts.Source = entities.DraftSource(source)
					draft, err = deps.Drafts.HandleSave(cmd.Context(), handlers.PayloadSource{Path: args[0], Format: format}, opts)
				}
				if err != nil {
					return err
				}
				return render(draft, func() {
					fmt.Printf("Saved %s draft with %d slots.\n", draft.Source, len(draft.Payload.Timetable))
				})
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "Input format: auto, json, csv")
	cmd.Flags().StringVarP(&source, "source", "s", string(entities.DraftSourceSchedule), "Draft source: schedule, generator")
	cmd.Flags().StringVarP(&opts.ProgramID, "program", "p", "", "Program id")
	cmd.Flags().IntVarP(&opts.TermNumber, "term", "t", 0, "Term number")
	cmd.Flags().BoolVar(&fromResults, "from-results", false, "Take the draft from saved generation results")

	return cmd
}

func newDraftShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the local draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				draft, err := deps.Drafts.HandleShow(cmd.Context())
				if err != nil {
					return err
				}
				return render(draft, func() {
					fmt.Printf("Draft from %s, generated %s\n", draft.Source, draft.GeneratedAt)
					if draft.ProgramID != nil {
						fmt.Printf("  Program: %s\n", *draft.ProgramID)
					}
					if draft.TermNumber != nil {
						fmt.Printf("  Term: %d\n", *draft.TermNumber)
					}
					displayPayloadSummary(draft.Payload)
					fmt.Println()
					displaySlots(draft.Payload.Timetable)
				})
			})
		},
	}
}

func newDraftCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the local draft for clashes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				report, err := deps.Drafts.HandleCheck(cmd.Context())
				if err != nil {
					return err
				}
				return render(report, func() { displayReport(report) })
			})
		},
	}
}

func newDraftPublishCmd() *cobra.Command {
	var (
		label string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the local draft as the official timetable",
		Long:  "Publishes the draft. The draft is cleared once the backend accepts it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				result, err := deps.Drafts.HandlePublish(cmd.Context(), label, force)
				if err != nil {
					return err
				}
				return render(result, func() { fmt.Println(result.Message) })
			})
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Version label")
	cmd.Flags().BoolVar(&force, "force", false, "Publish even if the backend reports hard conflicts")

	return cmd
}

func newDraftClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the local draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				deps.Drafts.HandleClear(cmd.Context())
				fmt.Println("Draft cleared.")
				return nil
			})
		},
	}
}
