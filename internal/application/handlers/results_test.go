package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/services"
)

func TestResultsHandler_HandleSave_Single(t *testing.T) {
	f := newFixture()
	path := writeFile(t, "result.json", `{"label": "Candidate 1", "hard_conflicts": 0, "soft_conflicts": 2, "fitness": 0.875, "payload": `+payloadJSON+`}`)

	saved, err := f.results.HandleSave(t.Context(), path, "")

	require.NoError(t, err)
	assert.Equal(t, entities.ResultsSingle, saved.Mode)
	assert.Nil(t, saved.ProgramID)
	assert.Empty(t, saved.Terms)

	shown, err := f.results.HandleShow(t.Context())
	require.NoError(t, err)
	require.NotNil(t, shown.Result)
	assert.Equal(t, "Candidate 1", shown.Result.Label)
	assert.Len(t, shown.Result.Payload.Timetable, 2)
}

func TestResultsHandler_HandleSave_BadFile(t *testing.T) {
	f := newFixture()
	path := writeFile(t, "result.json", `{"fitness": 1}`)

	_, err := f.results.HandleSave(t.Context(), path, "")

	require.Error(t, err)
	assert.Zero(t, f.kv.PutCallCount)
}

func TestResultsHandler_HandleClear(t *testing.T) {
	f := newFixture()
	path := writeFile(t, "result.json", `[{"term_number": 1, "result": {"label": "Term 1", "hard_conflicts": 0, "fitness": 0.9, "payload": {}}}]`)
	_, err := f.results.HandleSave(t.Context(), path, "")
	require.NoError(t, err)
	require.Contains(t, f.kv.Values, services.ResultsSnapshotKey)

	f.results.HandleClear(t.Context())

	_, err = f.results.HandleShow(t.Context())
	require.ErrorIs(t, err, ErrNoResults)
}
