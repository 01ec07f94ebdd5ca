package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/mocks"
	"github.com/ersonp/timetable-sync/internal/domain/ports"
)

func TestVersionService_List(t *testing.T) {
	t.Run("returns versions", func(t *testing.T) {
		api := &mocks.TimetableAPI{Versions: []entities.TimetableVersion{
			{ID: "v2", Label: "Week 2", CreatedAt: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)},
			{ID: "v1", Label: "Week 1", CreatedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		}}
		svc := NewVersionService(api)

		versions, err := svc.List(t.Context())

		require.NoError(t, err)
		require.Len(t, versions, 2)
		assert.Equal(t, "v2", versions[0].ID)
	})

	t.Run("signed out yields empty list", func(t *testing.T) {
		svc := NewVersionService(&mocks.TimetableAPI{})

		versions, err := svc.List(t.Context())

		require.NoError(t, err)
		assert.NotNil(t, versions)
		assert.Empty(t, versions)
	})

	t.Run("transport error is wrapped", func(t *testing.T) {
		svc := NewVersionService(&mocks.TimetableAPI{Err: &ports.APIError{StatusCode: 500, Message: "Failed to fetch versions"}})

		_, err := svc.List(t.Context())

		var apiErr *ports.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.StatusCode)
	})
}

func TestVersionService_Compare(t *testing.T) {
	t.Run("trims ids and relays them", func(t *testing.T) {
		api := &mocks.TimetableAPI{Comparison: &entities.VersionComparison{FromLabel: "Week 1", ToLabel: "Week 2", Added: 3, Changed: 1}}
		svc := NewVersionService(api)

		cmp, err := svc.Compare(t.Context(), " v1 ", "v2\n")

		require.NoError(t, err)
		assert.Equal(t, "v1", api.CompareLastFrom)
		assert.Equal(t, "v2", api.CompareLastTo)
		assert.Equal(t, 4, cmp.TotalChanges())
	})

	t.Run("missing id", func(t *testing.T) {
		api := &mocks.TimetableAPI{}
		svc := NewVersionService(api)

		_, err := svc.Compare(t.Context(), "v1", "  ")

		assert.ErrorContains(t, err, "both version ids are required")
		assert.Empty(t, api.CompareLastFrom)
	})
}

func TestVersionService_Trends_KeepsOrder(t *testing.T) {
	api := &mocks.TimetableAPI{TrendPoints: []entities.TrendPoint{
		{VersionID: "v3", SatisfactionScore: 0.7},
		{VersionID: "v1", SatisfactionScore: 0.9},
		{VersionID: "v2", SatisfactionScore: 0.8},
	}}

	points, err := NewVersionService(api).Trends(t.Context())

	require.NoError(t, err)
	ids := []string{points[0].VersionID, points[1].VersionID, points[2].VersionID}
	assert.Equal(t, []string{"v3", "v1", "v2"}, ids)
}

func TestVersionService_Publish(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		force     bool
		wantLabel string
	}{
		{name: "label and force", label: "  Week 3  ", force: true, wantLabel: "Week 3"},
		{name: "no label", label: "", force: false, wantLabel: ""},
		{name: "whitespace label", label: "   ", force: false, wantLabel: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mocks.TimetableAPI{}
			payload := samplePayload()

			result, err := NewVersionService(api).Publish(t.Context(), payload, tt.label, tt.force)

			require.NoError(t, err)
			assert.Equal(t, "published", result.Message)
			assert.Equal(t, 1, api.PublishCallCount)
			assert.Equal(t, payload, api.PublishLastPayload)
			assert.Equal(t, tt.wantLabel, api.PublishLastOptions.VersionLabel)
			assert.Equal(t, tt.force, api.PublishLastOptions.Force)
		})
	}
}

func TestVersionService_Publish_Unauthenticated(t *testing.T) {
	api := &mocks.TimetableAPI{Err: ports.ErrUnauthenticated}

	_, err := NewVersionService(api).Publish(t.Context(), entities.EmptyPayload(), "", false)

	assert.ErrorIs(t, err, ports.ErrUnauthenticated)
}

func TestVersionService_Publish_GateMessagePassesThrough(t *testing.T) {
	api := &mocks.TimetableAPI{Err: &ports.APIError{StatusCode: 409, Message: "2 hard conflicts remain; use force to publish"}}

	_, err := NewVersionService(api).Publish(t.Context(), entities.EmptyPayload(), "", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 hard conflicts remain; use force to publish")
}

func TestVersionService_Decide(t *testing.T) {
	t.Run("submits trimmed decision", func(t *testing.T) {
		api := &mocks.TimetableAPI{Decision: &entities.DecisionResult{ConflictID: "c1", Resolved: true, RepublishedVersion: "Auto"}}

		result, err := NewVersionService(api).Decide(t.Context(), " c1 ", entities.DecisionYes, "  swap rooms ")

		require.NoError(t, err)
		assert.True(t, result.Resolved)
		assert.Equal(t, "c1", api.DecideLastID)
		assert.Equal(t, entities.ConflictDecision{Decision: entities.DecisionYes, Note: "swap rooms"}, api.DecideLastDecision)
	})

	t.Run("invalid decision", func(t *testing.T) {
		_, err := NewVersionService(&mocks.TimetableAPI{}).Decide(t.Context(), "c1", entities.Decision("maybe"), "")
		assert.ErrorContains(t, err, "invalid decision")
	})

	t.Run("missing conflict id", func(t *testing.T) {
		_, err := NewVersionService(&mocks.TimetableAPI{}).Decide(t.Context(), "", entities.DecisionNo, "")
		assert.ErrorContains(t, err, "conflict id is required")
	})

	t.Run("backend failure", func(t *testing.T) {
		api := &mocks.TimetableAPI{Err: errors.New("boom")}
		_, err := NewVersionService(api).Decide(t.Context(), "c1", entities.DecisionNo, "")
		assert.ErrorContains(t, err, "submitting decision: boom")
	})
}
