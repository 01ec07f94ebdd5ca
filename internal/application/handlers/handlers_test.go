package handlers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/mocks"
	"github.com/ersonp/timetable-sync/internal/domain/services"
)

const payloadJSON = `{
	"faculty": [{"id": "f1", "name": "Ada", "department": "CSE", "maxHours": 16, "email": "ada@uni.edu"}],
	"courses": [{"id": "c1", "code": "CS101", "name": "Programming", "type": "theory", "credits": 4, "facultyId": "f1", "hoursPerWeek": 3}],
	"rooms": [{"id": "r1", "capacity": 60, "type": "lecture", "building": "Main"}],
	"timetable": [
		{"id": "t1", "day": "Monday", "startTime": "09:00", "endTime": "10:00", "courseId": "c1", "roomId": "r1", "facultyId": "f1", "section": "A"},
		{"id": "t2", "day": "Monday", "startTime": "09:30", "endTime": "10:30", "courseId": "c1", "roomId": "r1", "facultyId": "f1", "section": "B"}
	]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func officialFixture() *entities.OfficialTimetable {
	return &entities.OfficialTimetable{
		VersionLabel: "Week 3",
		TimetablePayload: entities.TimetablePayload{
			Faculty: []entities.Faculty{{ID: "f1", Name: "Ada", Email: "ada@uni.edu", MaxHours: 16}},
			Courses: []entities.Course{{ID: "c1", Code: "CS101", Name: "Programming"}},
			Rooms:   []entities.Room{{ID: "r1", Capacity: 60}},
			Timetable: []entities.TimeSlot{
				{ID: "t1", Day: entities.Monday, StartTime: "09:00", EndTime: "10:00", CourseID: "c1", RoomID: "r1", FacultyID: "f1", Section: "A"},
			},
		},
	}
}

// fixture wires every handler to the same mocks.
type fixture struct {
	api       *mocks.TimetableAPI
	kv        *mocks.KeyValueStore
	timetable *TimetableHandler
	versions  *VersionHandler
	conflicts *ConflictHandler
	drafts    *DraftHandler
	results   *ResultsHandler
}

func newFixture() *fixture {
	api := &mocks.TimetableAPI{}
	kv := mocks.NewKeyValueStore()
	identity := &mocks.IdentityResolver{EmailValue: "ada@uni.edu"}
	detector := services.NewClashDetector()

	versionService := services.NewVersionService(api)
	draftStore := services.NewDraftStore(kv, nil)
	resultsStore := services.NewResultsStore(kv, nil)

	timetable := NewTimetableHandler(services.NewTimetableService(api, identity))
	drafts := NewDraftHandler(draftStore, resultsStore, versionService, detector)
	drafts.now = func() time.Time { return time.Date(2026, 10, 19, 8, 30, 0, 0, time.FixedZone("IST", 19800)) }
	results := NewResultsHandler(resultsStore)
	results.now = drafts.now

	return &fixture{
		api:       api,
		kv:        kv,
		timetable: timetable,
		versions:  NewVersionHandler(versionService, timetable, detector),
		conflicts: NewConflictHandler(services.NewConflictService(api), timetable),
		drafts:    drafts,
		results:   results,
	}
}
