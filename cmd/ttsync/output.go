package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// render prints v as JSON when --json is set, otherwise calls text.
func render(v any, text func()) error {
	if globalJSON {
		return printJSON(v)
	}
	text()
	return nil
}

func validateChoice(flag, value string, valid []string) error {
	if !slices.Contains(valid, value) {
		return fmt.Errorf("invalid %s %q, valid values: %s", flag, value, strings.Join(valid, ", "))
	}
	return nil
}

func displaySlots(slots []entities.TimeSlot) {
	for _, s := range slots {
		fmt.Printf("  %-10s %s-%s  %-8s room %-8s section %s", s.Day, s.StartTime, s.EndTime, s.CourseID, s.RoomID, s.Section)
		if s.Batch != "" {
			fmt.Printf(" batch %s", s.Batch)
		}
		fmt.Printf("  [%s]\n", s.ID)
	}
}

func displayPayloadSummary(p entities.TimetablePayload) {
	fmt.Printf("  Faculty: %d  Courses: %d  Rooms: %d  Slots: %d\n",
		len(p.Faculty), len(p.Courses), len(p.Rooms), len(p.Timetable))
}

func displayReport(report entities.ConflictReport) {
	if len(report.Conflicts) == 0 {
		fmt.Println("No conflicts found.")
	} else {
		fmt.Printf("%d conflicts (%d hard):\n\n", len(report.Conflicts), report.HardCount())
		for _, c := range report.Conflicts {
			status := ""
			if c.Resolved {
				status = " (resolved)"
			}
			fmt.Printf("[%s] %s %s%s\n", c.Severity, c.ConflictType, c.ID, status)
			if c.Description != "" {
				fmt.Printf("  %s\n", c.Description)
			}
			if len(c.AffectedSlots) > 0 {
				fmt.Printf("  Slots: %s\n", strings.Join(c.AffectedSlots, ", "))
			}
		}
	}

	if len(report.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range report.Suggestions {
			fmt.Printf("  %s on %s: %s\n", s.ActionType, s.TargetSlotID, s.Description)
		}
	}
}
