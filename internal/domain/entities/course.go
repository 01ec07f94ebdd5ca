package entities

// CourseType is the default delivery type of a course.
type CourseType string

const (
	CourseTheory   CourseType = "theory"
	CourseLab      CourseType = "lab"
	CourseElective CourseType = "elective"
)

// IsValid reports whether t is a known course type.
func (t CourseType) IsValid() bool {
	switch t {
	case CourseTheory, CourseLab, CourseElective:
		return true
	default:
		return false
	}
}

// Course is a unit of teaching owned by one faculty member.
type Course struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Type         CourseType `json:"type"`
	Credits      int        `json:"credits"`
	FacultyID    string     `json:"facultyId"`
	HoursPerWeek int        `json:"hoursPerWeek"`
}

// RoomType is the kind of teaching space.
type RoomType string

const (
	RoomLecture RoomType = "lecture"
	RoomLab     RoomType = "lab"
	RoomSeminar RoomType = "seminar"
)

// IsValid reports whether t is a known room type.
func (t RoomType) IsValid() bool {
	switch t {
	case RoomLecture, RoomLab, RoomSeminar:
		return true
	default:
		return false
	}
}

// Room is a bookable teaching space.
type Room struct {
	ID       string   `json:"id"`
	Capacity int      `json:"capacity"`
	Type     RoomType `json:"type"`
	Building string   `json:"building"`
}

// Faculty is a teaching staff member.
// Email is the join key to the authenticated user.
type Faculty struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	MaxHours   int    `json:"maxHours"`
	Email      string `json:"email"`
}
