// Package entities contains core domain data structures.
package entities

import (
	"errors"
	"fmt"
	"regexp"
)

// Day is a teaching weekday.
type Day string

// Scheduling happens on the five weekdays only.
const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
)

// Weekdays lists the schedulable days in calendar order.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// IsValid reports whether d is one of the five weekdays.
func (d Day) IsValid() bool {
	return d.Index() >= 0
}

// Index returns the position of d within the week, or -1 when unknown.
func (d Day) Index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

// SessionType overrides a course's default type for a single slot.
type SessionType string

const (
	SessionTheory   SessionType = "theory"
	SessionTutorial SessionType = "tutorial"
	SessionLab      SessionType = "lab"
)

// IsValid reports whether s is a known session type.
func (s SessionType) IsValid() bool {
	switch s {
	case SessionTheory, SessionTutorial, SessionLab:
		return true
	default:
		return false
	}
}

// clockRegex matches zero-padded 24h HH:MM strings.
var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeSlot is one scheduled meeting of a course.
// StartTime and EndTime are zero-padded HH:MM strings, so lexical order is chronological.
type TimeSlot struct {
	ID          string      `json:"id"`
	Day         Day         `json:"day"`
	StartTime   string      `json:"startTime"`
	EndTime     string      `json:"endTime"`
	CourseID    string      `json:"courseId"`
	RoomID      string      `json:"roomId"`
	FacultyID   string      `json:"facultyId"`
	Section     string      `json:"section"`
	Batch       string      `json:"batch,omitempty"`
	SessionType SessionType `json:"sessionType,omitempty"`
}

// Validate checks the slot's own invariants. It does not resolve references.
func (s TimeSlot) Validate() error {
	if s.ID == "" {
		return errors.New("slot id is required")
	}
	if !s.Day.IsValid() {
		return fmt.Errorf("slot %s: invalid day %q", s.ID, s.Day)
	}
	if !clockRegex.MatchString(s.StartTime) {
		return fmt.Errorf("slot %s: invalid start time %q", s.ID, s.StartTime)
	}
	if !clockRegex.MatchString(s.EndTime) {
		return fmt.Errorf("slot %s: invalid end time %q", s.ID, s.EndTime)
	}
	if s.StartTime >= s.EndTime {
		return fmt.Errorf("slot %s: start %s is not before end %s", s.ID, s.StartTime, s.EndTime)
	}
	if s.SessionType != "" && !s.SessionType.IsValid() {
		return fmt.Errorf("slot %s: invalid session type %q", s.ID, s.SessionType)
	}
	return nil
}

// Overlaps reports whether two slots share any time on the same day.
// Back-to-back slots (one ends when the other starts) do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	if s.Day != other.Day {
		return false
	}
	return s.StartTime < other.EndTime && other.StartTime < s.EndTime
}

// DurationMinutes returns the slot length, or 0 when the clock strings are malformed.
func (s TimeSlot) DurationMinutes() int {
	start, ok := clockMinutes(s.StartTime)
	if !ok {
		return 0
	}
	end, ok := clockMinutes(s.EndTime)
	if !ok || end <= start {
		return 0
	}
	return end - start
}

func clockMinutes(clock string) (int, bool) {
	if !clockRegex.MatchString(clock) {
		return 0, false
	}
	h := int(clock[0]-'0')*10 + int(clock[1]-'0')
	m := int(clock[3]-'0')*10 + int(clock[4]-'0')
	return h*60 + m, true
}
