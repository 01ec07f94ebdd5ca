package entities

import "strings"

// Severity classifies how strongly a conflict blocks publishing.
type Severity string

const (
	// SeverityHard blocks publish unless forced.
	SeverityHard Severity = "hard"
	// SeveritySoft is advisory only.
	SeveritySoft Severity = "soft"
)

// ParseSeverity maps a backend severity value onto the canonical pair.
// Only "high" and "hard" (any casing) are hard; everything else is soft.
func ParseSeverity(raw string) Severity {
	switch strings.ToLower(raw) {
	case "high", "hard":
		return SeverityHard
	default:
		return SeveritySoft
	}
}

// Conflict is the canonical shape of a scheduling conflict.
type Conflict struct {
	ID            string   `json:"id"`
	ConflictType  string   `json:"conflict_type"`
	Severity      Severity `json:"severity"`
	Description   string   `json:"description"`
	AffectedSlots []string `json:"affected_slots"`
	Resolution    string   `json:"resolution,omitempty"`
	Resolved      bool     `json:"resolved"`
}

// IsHard reports whether the conflict blocks publishing.
func (c Conflict) IsHard() bool {
	return c.Severity == SeverityHard
}

// ResolutionAction is a suggested fix for a conflict.
type ResolutionAction struct {
	ActionType   string         `json:"action_type"`
	Description  string         `json:"description"`
	TargetSlotID string         `json:"target_slot_id"`
	Parameters   map[string]any `json:"parameters"`
}

// ConflictReport groups canonical conflicts with their suggested resolutions.
type ConflictReport struct {
	Conflicts   []Conflict         `json:"conflicts"`
	Suggestions []ResolutionAction `json:"suggestions"`
}

// HardCount returns the number of hard conflicts in the report.
func (r ConflictReport) HardCount() int {
	n := 0
	for i := range r.Conflicts {
		if r.Conflicts[i].IsHard() {
			n++
		}
	}
	return n
}

// RawConflict is a conflict record as sent by the backend, before normalization.
// Field names and casing vary between backend revisions.
type RawConflict map[string]any

// ConflictAnalysis is the raw result of a server-side conflict analysis.
type ConflictAnalysis struct {
	Conflicts   []RawConflict      `json:"conflicts"`
	Suggestions []ResolutionAction `json:"suggestions"`
}

// ResolveRequest applies one resolution action to a conflict.
type ResolveRequest struct {
	ConflictID string           `json:"conflict_id"`
	Action     ResolutionAction `json:"action"`
}

// ResolveResult is the backend's answer to a resolve request.
type ResolveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Decision is a binary answer to a conflict prompt.
type Decision string

const (
	DecisionYes Decision = "yes"
	DecisionNo  Decision = "no"
)

// IsValid reports whether d is yes or no.
func (d Decision) IsValid() bool {
	return d == DecisionYes || d == DecisionNo
}

// ConflictDecision is submitted against a single conflict id.
type ConflictDecision struct {
	Decision Decision `json:"decision"`
	Note     string   `json:"note,omitempty"`
}

// DecisionResult reports the effect of a conflict decision.
// RepublishedVersion is set only when the decision triggered a republish.
type DecisionResult struct {
	ConflictID         string `json:"conflict_id"`
	Resolved           bool   `json:"resolved"`
	Message            string `json:"message"`
	RepublishedVersion string `json:"republished_version_label,omitempty"`
}
