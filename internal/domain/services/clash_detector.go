package services

import (
	"fmt"
	"sort"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// Conflict types reported by local clash detection.
const (
	ConflictRoomClash       = "room-clash"
	ConflictFacultyOverlap  = "faculty-overlap"
	ConflictSectionOverlap  = "section-overlap"
	ConflictInvalidSlot     = "invalid-slot"
	ConflictFacultyOverload = "faculty-overload"
)

// ClashDetector previews conflicts in a payload before it is published.
// It only reports; publishing and forcing stay with the caller.
type ClashDetector struct{}

// NewClashDetector creates a new ClashDetector.
func NewClashDetector() *ClashDetector {
	return &ClashDetector{}
}

// Detect returns canonical conflicts found in payload, hard ones first.
func (d *ClashDetector) Detect(payload entities.TimetablePayload) entities.ConflictReport {
	conflicts := make([]entities.Conflict, 0)

	valid := make([]entities.TimeSlot, 0, len(payload.Timetable))
	for _, slot := range payload.Timetable {
		if err := slot.Validate(); err != nil {
			conflicts = append(conflicts, entities.Conflict{
				ID:            fmt.Sprintf("%s:%s", ConflictInvalidSlot, slot.ID),
				ConflictType:  ConflictInvalidSlot,
				Severity:      entities.SeverityHard,
				Description:   err.Error(),
				AffectedSlots: []string{slot.ID},
			})
			continue
		}
		valid = append(valid, slot)
	}

	byDay := make(map[entities.Day][]entities.TimeSlot)
	for _, slot := range valid {
		byDay[slot.Day] = append(byDay[slot.Day], slot)
	}

	for _, day := range entities.Weekdays {
		slots := byDay[day]
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				conflicts = append(conflicts, pairClashes(slots[i], slots[j])...)
			}
		}
	}

	conflicts = append(conflicts, overloads(payload.Faculty, valid)...)

	sort.SliceStable(conflicts, func(i, j int) bool {
		return conflicts[i].IsHard() && !conflicts[j].IsHard()
	})

	return entities.ConflictReport{
		Conflicts:   conflicts,
		Suggestions: []entities.ResolutionAction{},
	}
}

// pairClashes reports every resource two overlapping slots both use.
func pairClashes(a, b entities.TimeSlot) []entities.Conflict {
	if !a.Overlaps(b) {
		return nil
	}

	var out []entities.Conflict
	when := fmt.Sprintf("%s %s-%s / %s-%s", a.Day, a.StartTime, a.EndTime, b.StartTime, b.EndTime)

	if a.RoomID != "" && a.RoomID == b.RoomID {
		out = append(out, hardPair(ConflictRoomClash, a, b,
			fmt.Sprintf("room %s is double-booked on %s", a.RoomID, when)))
	}
	if a.FacultyID != "" && a.FacultyID == b.FacultyID {
		out = append(out, hardPair(ConflictFacultyOverlap, a, b,
			fmt.Sprintf("faculty %s teaches two slots at once on %s", a.FacultyID, when)))
	}
	if sectionsCollide(a, b) {
		out = append(out, hardPair(ConflictSectionOverlap, a, b,
			fmt.Sprintf("section %s has two slots at once on %s", a.Section, when)))
	}
	return out
}

// sectionsCollide treats an empty batch as the whole section.
func sectionsCollide(a, b entities.TimeSlot) bool {
	if a.Section == "" || a.Section != b.Section {
		return false
	}
	return a.Batch == "" || b.Batch == "" || a.Batch == b.Batch
}

func hardPair(kind string, a, b entities.TimeSlot, desc string) entities.Conflict {
	return entities.Conflict{
		ID:            fmt.Sprintf("%s:%s:%s", kind, a.ID, b.ID),
		ConflictType:  kind,
		Severity:      entities.SeverityHard,
		Description:   desc,
		AffectedSlots: []string{a.ID, b.ID},
	}
}

// overloads flags faculty scheduled above their weekly ceiling.
func overloads(faculty []entities.Faculty, slots []entities.TimeSlot) []entities.Conflict {
	minutes := make(map[string]int)
	slotIDs := make(map[string][]string)
	for _, s := range slots {
		minutes[s.FacultyID] += s.DurationMinutes()
		slotIDs[s.FacultyID] = append(slotIDs[s.FacultyID], s.ID)
	}

	var out []entities.Conflict
	for _, f := range faculty {
		if f.MaxHours <= 0 {
			continue
		}
		if minutes[f.ID] <= f.MaxHours*60 {
			continue
		}
		out = append(out, entities.Conflict{
			ID:           fmt.Sprintf("%s:%s", ConflictFacultyOverload, f.ID),
			ConflictType: ConflictFacultyOverload,
			Severity:     entities.SeveritySoft,
			Description: fmt.Sprintf("%s is scheduled for %.1fh, above the %dh weekly maximum",
				f.Name, float64(minutes[f.ID])/60, f.MaxHours),
			AffectedSlots: slotIDs[f.ID],
		})
	}
	return out
}
