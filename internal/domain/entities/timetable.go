package entities

import (
	"sort"
	"strings"
)

// TimetablePayload is a complete schedule with everything its slots reference.
type TimetablePayload struct {
	Faculty   []Faculty  `json:"faculty"`
	Courses   []Course   `json:"courses"`
	Rooms     []Room     `json:"rooms"`
	Timetable []TimeSlot `json:"timetable"`
}

// EmptyPayload returns a payload whose lists are empty but non-nil.
func EmptyPayload() TimetablePayload {
	return TimetablePayload{
		Faculty:   []Faculty{},
		Courses:   []Course{},
		Rooms:     []Room{},
		Timetable: []TimeSlot{},
	}
}

// WithEmptyLists returns a copy of p whose nil lists are replaced by empty ones,
// so all four sequences serialize as arrays.
func (p TimetablePayload) WithEmptyLists() TimetablePayload {
	if p.Faculty == nil {
		p.Faculty = []Faculty{}
	}
	if p.Courses == nil {
		p.Courses = []Course{}
	}
	if p.Rooms == nil {
		p.Rooms = []Room{}
	}
	if p.Timetable == nil {
		p.Timetable = []TimeSlot{}
	}
	return p
}

// FindFacultyByEmail returns the faculty member whose email matches, ignoring case.
func (p TimetablePayload) FindFacultyByEmail(email string) (Faculty, bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Faculty{}, false
	}
	for _, f := range p.Faculty {
		if strings.EqualFold(f.Email, email) {
			return f, true
		}
	}
	return Faculty{}, false
}

// SlotsForFaculty returns the faculty member's slots ordered by day then start time.
func (p TimetablePayload) SlotsForFaculty(facultyID string) []TimeSlot {
	slots := make([]TimeSlot, 0)
	for _, s := range p.Timetable {
		if s.FacultyID == facultyID {
			slots = append(slots, s)
		}
	}
	SortSlots(slots)
	return slots
}

// SortSlots orders slots by weekday, then start time, then id.
func SortSlots(slots []TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		di, dj := slots[i].Day.Index(), slots[j].Day.Index()
		if di != dj {
			return di < dj
		}
		if slots[i].StartTime != slots[j].StartTime {
			return slots[i].StartTime < slots[j].StartTime
		}
		return slots[i].ID < slots[j].ID
	})
}

// OfficialTimetable is the currently published schedule.
type OfficialTimetable struct {
	VersionLabel string `json:"version_label,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	TimetablePayload
}

// FacultyLoad is one faculty member's scheduled weekly load.
type FacultyLoad struct {
	FacultyID string  `json:"faculty_id"`
	Name      string  `json:"name"`
	Hours     float64 `json:"hours"`
	MaxHours  int     `json:"max_hours"`
}

// RoomUsage is one room's utilization.
type RoomUsage struct {
	RoomID      string  `json:"room_id"`
	UsedSlots   int     `json:"used_slots"`
	Utilization float64 `json:"utilization"`
}

// Analytics summarizes the official timetable.
type Analytics struct {
	TotalSlots      int           `json:"total_slots"`
	ConflictCount   int           `json:"conflict_count"`
	FacultyWorkload []FacultyLoad `json:"faculty_workload"`
	RoomUtilization []RoomUsage   `json:"room_utilization"`
}

// FacultyMapping links a faculty record to an authenticated user account.
type FacultyMapping struct {
	FacultyID string `json:"faculty_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	UserID    string `json:"user_id,omitempty"`
}
