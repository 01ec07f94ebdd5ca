package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/services"
)

func TestDraftHandler_HandleSave(t *testing.T) {
	f := newFixture()
	path := writeFile(t, "draft.json", payloadJSON)

	saved, err := f.drafts.HandleSave(t.Context(), PayloadSource{Path: path}, DraftOptions{ProgramID: " btech-cse ", TermNumber: 3})

	require.NoError(t, err)
	assert.Equal(t, entities.DraftSourceSchedule, saved.Source)
	assert.Equal(t, "2026-10-19T03:00:00Z", saved.GeneratedAt)
	require.NotNil(t, saved.ProgramID)
	assert.Equal(t, "btech-cse", *saved.ProgramID)
	require.NotNil(t, saved.TermNumber)
	assert.Equal(t, 3, *saved.TermNumber)

	shown, err := f.drafts.HandleShow(t.Context())
	require.NoError(t, err)
	assert.Equal(t, saved, shown)
}

func TestDraftHandler_NoDraft(t *testing.T) {
	f := newFixture()

	_, err := f.drafts.HandleShow(t.Context())
	require.ErrorIs(t, err, ErrNoDraft)

	_, err = f.drafts.HandleCheck(t.Context())
	require.ErrorIs(t, err, ErrNoDraft)

	_, err = f.drafts.HandlePublish(t.Context(), "", false)
	require.ErrorIs(t, err, ErrNoDraft)
	assert.Zero(t, f.api.PublishCallCount)
}

func TestDraftHandler_HandleCheck(t *testing.T) {
	f := newFixture()
	path := writeFile(t, "draft.json", payloadJSON)
	_, err := f.drafts.HandleSave(t.Context(), PayloadSource{Path: path}, DraftOptions{})
	require.NoError(t, err)

	report, err := f.drafts.HandleCheck(t.Context())

	require.NoError(t, err)
	assert.Positive(t, report.HardCount())
}

func TestDraftHandler_HandlePublish_ClearsOnSuccess(t *testing.T) {
	f := newFixture()
	path := writeFile(t, "draft.json", payloadJSON)
	_, err := f.drafts.HandleSave(t.Context(), PayloadSource{Path: path}, DraftOptions{})
	require.NoError(t, err)

	result, err := f.drafts.HandlePublish(t.Context(), "Week 4", true)

	require.NoError(t, err)
	assert.Equal(t, "published", result.Message)
	assert.Equal(t, "Week 4", f.api.PublishLastOptions.VersionLabel)
	assert.NotContains(t, f.kv.Values, services.DraftSnapshotKey)
}

func TestDraftHandler_HandlePublish_KeepsDraftOnFailure(t *testing.T) {
	f := newFixture()
	path := writeFile(t, "draft.json", payloadJSON)
	_, err := f.drafts.HandleSave(t.Context(), PayloadSource{Path: path}, DraftOptions{})
	require.NoError(t, err)
	f.api.Err = errors.New("backend down")

	_, err = f.drafts.HandlePublish(t.Context(), "", false)

	require.Error(t, err)
	assert.Contains(t, f.kv.Values, services.DraftSnapshotKey)
}

func TestDraftHandler_HandleSaveFromResults(t *testing.T) {
	f := newFixture()
	path := writeFile(t, "terms.json", `{"terms": [
		{"term_number": 1, "result": {"label": "Term 1", "hard_conflicts": 0, "fitness": 0.9, "payload": {"timetable": []}}},
		{"term_number": 2, "result": {"label": "Term 2", "hard_conflicts": 1, "fitness": 0.6, "payload": `+payloadJSON+`}}
	]}`)
	_, err := f.results.HandleSave(t.Context(), path, "btech-cse")
	require.NoError(t, err)

	draft, err := f.drafts.HandleSaveFromResults(t.Context(), 2)

	require.NoError(t, err)
	assert.Equal(t, entities.DraftSourceGenerator, draft.Source)
	assert.Len(t, draft.Payload.Timetable, 2)
	require.NotNil(t, draft.TermNumber)
	assert.Equal(t, 2, *draft.TermNumber)
	require.NotNil(t, draft.ProgramID)
	assert.Equal(t, "btech-cse", *draft.ProgramID)

	_, err = f.drafts.HandleSaveFromResults(t.Context(), 7)
	require.Error(t, err)
}

func TestDraftHandler_HandleSaveFromResults_NoResults(t *testing.T) {
	f := newFixture()

	_, err := f.drafts.HandleSaveFromResults(t.Context(), 1)

	require.ErrorIs(t, err, ErrNoResults)
}
