package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

func TestNormalizeConflict_Severity(t *testing.T) {
	tests := []struct {
		name     string
		raw      entities.RawConflict
		expected entities.Severity
	}{
		{name: "High", raw: entities.RawConflict{"severity": "High"}, expected: entities.SeverityHard},
		{name: "hard", raw: entities.RawConflict{"severity": "hard"}, expected: entities.SeverityHard},
		{name: "HARD", raw: entities.RawConflict{"severity": "HARD"}, expected: entities.SeverityHard},
		{name: "medium", raw: entities.RawConflict{"severity": "medium"}, expected: entities.SeveritySoft},
		{name: "low", raw: entities.RawConflict{"severity": "low"}, expected: entities.SeveritySoft},
		{name: "missing", raw: entities.RawConflict{}, expected: entities.SeveritySoft},
		{name: "numeric", raw: entities.RawConflict{"severity": float64(3)}, expected: entities.SeveritySoft},
		{name: "null", raw: entities.RawConflict{"severity": nil}, expected: entities.SeveritySoft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NormalizeConflict(tt.raw)
			assert.Equal(t, tt.expected, c.Severity)
		})
	}
}

func TestNormalizeConflict_AffectedSlots(t *testing.T) {
	tests := []struct {
		name     string
		raw      entities.RawConflict
		expected []string
	}{
		{
			name:     "snake case wins when both present",
			raw:      entities.RawConflict{"affected_slots": []any{"a"}, "affectedSlots": []any{"b"}},
			expected: []string{"a"},
		},
		{
			name:     "camel case only",
			raw:      entities.RawConflict{"affectedSlots": []any{"b"}},
			expected: []string{"b"},
		},
		{
			name:     "empty snake case falls back to camel case",
			raw:      entities.RawConflict{"affected_slots": []any{}, "affectedSlots": []any{"b"}},
			expected: []string{"b"},
		},
		{
			name:     "neither",
			raw:      entities.RawConflict{},
			expected: []string{},
		},
		{
			name:     "not an array",
			raw:      entities.RawConflict{"affected_slots": "t1"},
			expected: []string{},
		},
		{
			name:     "numeric ids are stringified",
			raw:      entities.RawConflict{"affected_slots": []any{float64(7), "t2"}},
			expected: []string{"7", "t2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NormalizeConflict(tt.raw)
			assert.Equal(t, tt.expected, c.AffectedSlots)
		})
	}
}

func TestNormalizeConflict_ConflictType(t *testing.T) {
	tests := []struct {
		name     string
		raw      entities.RawConflict
		expected string
	}{
		{
			name:     "type field",
			raw:      entities.RawConflict{"type": "room-clash", "conflict_type": "other"},
			expected: "room-clash",
		},
		{
			name:     "conflict_type fallback",
			raw:      entities.RawConflict{"conflict_type": "room-clash"},
			expected: "room-clash",
		},
		{
			name:     "null type falls back",
			raw:      entities.RawConflict{"type": nil, "conflict_type": "faculty-overlap"},
			expected: "faculty-overlap",
		},
		{
			name:     "both absent",
			raw:      entities.RawConflict{},
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NormalizeConflict(tt.raw)
			assert.Equal(t, tt.expected, c.ConflictType)
		})
	}
}

func TestNormalizeConflict_Defaults(t *testing.T) {
	c := NormalizeConflict(entities.RawConflict{"id": "c9"})

	assert.Equal(t, "c9", c.ID)
	assert.Equal(t, "", c.Description)
	assert.Equal(t, "", c.Resolution)
	assert.False(t, c.Resolved)
}

func TestNormalizeConflict_Resolved(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "true", value: true, expected: true},
		{name: "false", value: false, expected: false},
		{name: "one", value: float64(1), expected: true},
		{name: "zero", value: float64(0), expected: false},
		{name: "non-empty string", value: "yes", expected: true},
		{name: "empty string", value: "", expected: false},
		{name: "null", value: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NormalizeConflict(entities.RawConflict{"resolved": tt.value})
			assert.Equal(t, tt.expected, c.Resolved)
		})
	}
}

func TestNormalizeConflict_NumericID(t *testing.T) {
	c := NormalizeConflict(entities.RawConflict{"id": float64(42)})
	assert.Equal(t, "42", c.ID)
}

func TestNormalizeConflicts_Report(t *testing.T) {
	var raw []entities.RawConflict
	err := json.Unmarshal([]byte(`[
		{"id": "c1", "severity": "hard", "affected_slots": ["t1", "t2"]},
		{"id": "c2", "conflict_type": "faculty-overlap"}
	]`), &raw)
	require.NoError(t, err)

	report := NormalizeConflicts(raw)

	require.Len(t, report.Conflicts, 2)
	assert.NotNil(t, report.Suggestions)
	assert.Empty(t, report.Suggestions)

	c1 := report.Conflicts[0]
	assert.Equal(t, "c1", c1.ID)
	assert.Equal(t, entities.SeverityHard, c1.Severity)
	assert.Equal(t, []string{"t1", "t2"}, c1.AffectedSlots)
	assert.Equal(t, "unknown", c1.ConflictType)

	c2 := report.Conflicts[1]
	assert.Equal(t, "c2", c2.ID)
	assert.Equal(t, entities.SeveritySoft, c2.Severity)
	assert.Equal(t, "faculty-overlap", c2.ConflictType)
	assert.Equal(t, []string{}, c2.AffectedSlots)
}

func TestNormalizeConflicts_Empty(t *testing.T) {
	report := NormalizeConflicts(nil)
	assert.NotNil(t, report.Conflicts)
	assert.Empty(t, report.Conflicts)
}
