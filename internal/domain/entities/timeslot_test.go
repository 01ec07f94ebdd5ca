package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSlot() TimeSlot {
	return TimeSlot{
		ID:        "t1",
		Day:       Monday,
		StartTime: "09:00",
		EndTime:   "10:00",
		CourseID:  "c1",
		RoomID:    "r1",
		FacultyID: "f1",
		Section:   "CSE-A",
	}
}

func TestTimeSlot_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *TimeSlot)
		wantErr string
	}{
		{
			name:   "valid slot",
			mutate: func(s *TimeSlot) {},
		},
		{
			name:    "missing id",
			mutate:  func(s *TimeSlot) { s.ID = "" },
			wantErr: "slot id is required",
		},
		{
			name:    "weekend day",
			mutate:  func(s *TimeSlot) { s.Day = "Saturday" },
			wantErr: "invalid day",
		},
		{
			name:    "unpadded start",
			mutate:  func(s *TimeSlot) { s.StartTime = "9:00" },
			wantErr: "invalid start time",
		},
		{
			name:    "end out of range",
			mutate:  func(s *TimeSlot) { s.EndTime = "24:00" },
			wantErr: "invalid end time",
		},
		{
			name:    "start equals end",
			mutate:  func(s *TimeSlot) { s.EndTime = "09:00" },
			wantErr: "is not before end",
		},
		{
			name:    "start after end",
			mutate:  func(s *TimeSlot) { s.StartTime = "11:00" },
			wantErr: "is not before end",
		},
		{
			name:   "lab session override",
			mutate: func(s *TimeSlot) { s.SessionType = SessionLab },
		},
		{
			name:    "unknown session type",
			mutate:  func(s *TimeSlot) { s.SessionType = "seminar" },
			wantErr: "invalid session type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSlot()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := validSlot()

	tests := []struct {
		name     string
		other    TimeSlot
		expected bool
	}{
		{
			name:     "identical time",
			other:    TimeSlot{Day: Monday, StartTime: "09:00", EndTime: "10:00"},
			expected: true,
		},
		{
			name:     "partial overlap",
			other:    TimeSlot{Day: Monday, StartTime: "09:30", EndTime: "10:30"},
			expected: true,
		},
		{
			name:     "contained",
			other:    TimeSlot{Day: Monday, StartTime: "09:15", EndTime: "09:45"},
			expected: true,
		},
		{
			name:     "back to back",
			other:    TimeSlot{Day: Monday, StartTime: "10:00", EndTime: "11:00"},
			expected: false,
		},
		{
			name:     "different day",
			other:    TimeSlot{Day: Tuesday, StartTime: "09:00", EndTime: "10:00"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.Overlaps(tt.other))
			assert.Equal(t, tt.expected, tt.other.Overlaps(base))
		})
	}
}

func TestTimeSlot_DurationMinutes(t *testing.T) {
	s := validSlot()
	s.EndTime = "10:50"
	assert.Equal(t, 110, s.DurationMinutes())

	s.EndTime = "bad"
	assert.Equal(t, 0, s.DurationMinutes())
}

func TestDay_Index(t *testing.T) {
	assert.Equal(t, 0, Monday.Index())
	assert.Equal(t, 4, Friday.Index())
	assert.Equal(t, -1, Day("Sunday").Index())
	assert.False(t, Day("monday").IsValid())
}

func TestSortSlots(t *testing.T) {
	slots := []TimeSlot{
		{ID: "c", Day: Wednesday, StartTime: "08:00"},
		{ID: "b", Day: Monday, StartTime: "11:00"},
		{ID: "a", Day: Monday, StartTime: "09:00"},
	}

	SortSlots(slots)

	assert.Equal(t, []string{"a", "b", "c"}, []string{slots[0].ID, slots[1].ID, slots[2].ID})
}
