package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/timetable-sync/internal/application/handlers"
)

func newOfficialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "official",
		Short: "Read or publish the official timetable",
	}

	cmd.AddCommand(
		newOfficialGetCmd(),
		newOfficialMineCmd(),
		newOfficialPublishCmd(),
	)

	return cmd
}

func newOfficialGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the published timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				official, err := deps.Timetable.HandleOfficial(cmd.Context())
				if err != nil {
					return err
				}
				if official == nil {
					fmt.Println("No official timetable is available.")
					return nil
				}
				return render(official, func() {
					fmt.Printf("Official timetable %s", official.VersionLabel)
					if official.PublishedAt != "" {
						fmt.Printf(" (published %s)", official.PublishedAt)
					}
					fmt.Println()
					displayPayloadSummary(official.TimetablePayload)
					fmt.Println()
					displaySlots(official.Timetable)
				})
			})
		},
	}
}

func newOfficialMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Show your own slots in the published timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				result, err := deps.Timetable.HandleMine(cmd.Context())
				if err != nil {
					return err
				}
				return render(result, func() {
					fmt.Printf("%s (%s): %d slots\n\n", result.Faculty.Name, result.Faculty.ID, len(result.Slots))
					displaySlots(result.Slots)
				})
			})
		},
	}
}

func newOfficialPublishCmd() *cobra.Command {
	var (
		format string
		opts   handlers.PublishOptions
	)

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Publish a timetable file as the official timetable",
		Long: `Publishes a full JSON payload, or a CSV of slot edits merged onto the
current official timetable. A local clash preview is printed first; the
backend decides whether conflicts block the publish.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateChoice("format", format, validFormats); err != nil {
				return err
			}
			return withDeps(cmd.Context(), func(deps *Deps) error {
				outcome, err := deps.Versions.HandlePublish(cmd.Context(), handlers.PayloadSource{Path: args[0], Format: format}, opts)
				if outcome != nil && !globalJSON {
					displayReport(outcome.Preview)
					fmt.Println()
				}
				if err != nil {
					return err
				}
				return render(outcome, func() {
					if !outcome.Published {
						fmt.Println("Dry run: nothing published.")
						return
					}
					fmt.Println(outcome.Result.Message)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "Input format: auto, json, csv")
	cmd.Flags().StringVarP(&opts.Label, "label", "l", "", "Version label")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Publish even if the backend reports hard conflicts")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Only run the local clash preview")

	return cmd
}

func newAnalyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show workload and room utilization analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				analytics, err := deps.Timetable.HandleAnalytics(cmd.Context())
				if err != nil {
					return err
				}
				if analytics == nil {
					fmt.Println("No analytics available.")
					return nil
				}
				return render(analytics, func() {
					fmt.Printf("Slots: %d  Conflicts: %d\n", analytics.TotalSlots, analytics.ConflictCount)
					if len(analytics.FacultyWorkload) > 0 {
						fmt.Println("\nFaculty workload:")
						for _, l := range analytics.FacultyWorkload {
							fmt.Printf("  %-24s %5.1f / %d h\n", l.Name, l.Hours, l.MaxHours)
						}
					}
					if len(analytics.RoomUtilization) > 0 {
						fmt.Println("\nRoom utilization:")
						for _, r := range analytics.RoomUtilization {
							fmt.Printf("  %-10s %3d slots  %5.1f%%\n", r.RoomID, r.UsedSlots, r.Utilization*100)
						}
					}
				})
			})
		},
	}
}

func newFacultyMappingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faculty-mapping",
		Short: "Show which user account each faculty record belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				mapping, err := deps.Timetable.HandleFacultyMapping(cmd.Context())
				if err != nil {
					return err
				}
				return render(mapping, func() {
					if len(mapping) == 0 {
						fmt.Println("No faculty mappings found.")
						return
					}
					for _, m := range mapping {
						fmt.Printf("  %-12s %-24s %s\n", m.FacultyID, m.Name, m.Email)
					}
				})
			})
		},
	}
}

func newPublishOfflineCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "publish-offline [faculty-id...]",
		Short: "Notify faculty of their timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				result, err := deps.Timetable.HandlePublishOffline(cmd.Context(), args, all)
				if err != nil {
					return err
				}
				return render(result, func() {
					fmt.Printf("%s (%d sent)\n", result.Message, result.Sent)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Notify every faculty member")

	return cmd
}
