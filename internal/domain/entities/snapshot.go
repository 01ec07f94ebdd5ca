package entities

import (
	"encoding/json"
	"fmt"
	"math"
)

// SnapshotVersion is the only envelope version readers accept.
const SnapshotVersion = 1

// EnvelopeVersion is a snapshot envelope's version tag.
// Any integral JSON number decodes, so 1 and 1.0 are the same version.
type EnvelopeVersion int

// UnmarshalJSON implements json.Unmarshaler.
func (v *EnvelopeVersion) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decoding envelope version: %w", err)
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("envelope version %v is not an integer", f)
	}
	*v = EnvelopeVersion(f)
	return nil
}

// DraftSource records which flow produced a draft.
type DraftSource string

const (
	DraftSourceGenerator DraftSource = "generator"
	DraftSourceSchedule  DraftSource = "schedule"
)

// GeneratedDraftSnapshot is a locally cached, not-yet-published candidate schedule.
type GeneratedDraftSnapshot struct {
	Version     EnvelopeVersion  `json:"version"`
	Source      DraftSource      `json:"source"`
	GeneratedAt string           `json:"generated_at"`
	ProgramID   *string          `json:"program_id,omitempty"`
	TermNumber  *int             `json:"term_number,omitempty"`
	Payload     TimetablePayload `json:"payload"`
}

// ResultsMode discriminates the two results envelope shapes.
type ResultsMode string

const (
	ResultsSingle ResultsMode = "single"
	ResultsCycle  ResultsMode = "cycle"
)

// GenerationResult is one candidate produced by the generator.
type GenerationResult struct {
	Label         string           `json:"label"`
	HardConflicts int              `json:"hard_conflicts"`
	SoftConflicts int              `json:"soft_conflicts"`
	Fitness       float64          `json:"fitness"`
	Payload       TimetablePayload `json:"payload"`
}

// TermResult is a generation result for one term of a program cycle.
type TermResult struct {
	TermNumber int              `json:"term_number"`
	Result     GenerationResult `json:"result"`
}

// GeneratedResultsSnapshot caches generator output between page navigations.
// Mode selects whether Result or Terms is populated.
type GeneratedResultsSnapshot struct {
	Version     EnvelopeVersion   `json:"version"`
	Mode        ResultsMode       `json:"mode"`
	GeneratedAt string            `json:"generated_at"`
	ProgramID   *string           `json:"program_id,omitempty"`
	Result      *GenerationResult `json:"result,omitempty"`
	Terms       []TermResult      `json:"terms"`
}
