package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

func TestTimetableHandler_HandlePublishOffline(t *testing.T) {
	tests := []struct {
		name       string
		ids        []string
		all        bool
		wantErr    error
		wantAll    int
		wantFaculty []string
	}{
		{name: "selected faculty", ids: []string{"f1", "f2"}, wantFaculty: []string{"f1", "f2"}},
		{name: "everyone", all: true, wantAll: 1},
		{name: "nothing selected", wantErr: ErrNoOfflineTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.api.Offline = &entities.OfflinePublishResult{Message: "sent", Sent: 2}

			result, err := f.timetable.HandlePublishOffline(t.Context(), tt.ids, tt.all)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, f.api.OfflineAllCallCount)
				assert.Nil(t, f.api.OfflineLastFaculty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, result.Sent)
			assert.Equal(t, tt.wantAll, f.api.OfflineAllCallCount)
			assert.Equal(t, tt.wantFaculty, f.api.OfflineLastFaculty)
		})
	}
}

func TestTimetableHandler_HandlePublishOffline_IDsAndAll(t *testing.T) {
	f := newFixture()

	_, err := f.timetable.HandlePublishOffline(t.Context(), []string{"f1"}, true)

	require.Error(t, err)
	assert.Zero(t, f.api.OfflineAllCallCount)
}

func TestTimetableHandler_HandleMine(t *testing.T) {
	f := newFixture()
	f.api.Official = officialFixture()

	result, err := f.timetable.HandleMine(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "f1", result.Faculty.ID)
	require.Len(t, result.Slots, 1)
}

func TestTimetableHandler_OfficialBase_NoneYet(t *testing.T) {
	f := newFixture()

	base, err := f.timetable.officialBase(t.Context())

	require.NoError(t, err)
	assert.Equal(t, entities.EmptyPayload(), base)
}
