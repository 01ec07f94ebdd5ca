package services

import (
	"encoding/json"
	"strconv"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// UnknownConflictType is used when a record names no cause at all.
const UnknownConflictType = "unknown"

// NormalizeConflicts maps raw backend conflict records onto the canonical shape.
// It performs no I/O and accepts any object-shaped input. Suggestions are always
// empty here; they only come from the analysis path.
func NormalizeConflicts(raw []entities.RawConflict) entities.ConflictReport {
	conflicts := make([]entities.Conflict, 0, len(raw))
	for _, r := range raw {
		conflicts = append(conflicts, NormalizeConflict(r))
	}
	return entities.ConflictReport{
		Conflicts:   conflicts,
		Suggestions: []entities.ResolutionAction{},
	}
}

// NormalizeConflict canonicalizes a single raw record.
func NormalizeConflict(raw entities.RawConflict) entities.Conflict {
	c := entities.Conflict{
		ConflictType:  UnknownConflictType,
		Severity:      entities.SeveritySoft,
		AffectedSlots: []string{},
	}

	if id, ok := scalarString(raw["id"]); ok {
		c.ID = id
	}

	// "type" wins over "conflict_type" whenever it is present, even if empty.
	if t, ok := scalarString(raw["type"]); ok {
		c.ConflictType = t
	} else if t, ok := scalarString(raw["conflict_type"]); ok {
		c.ConflictType = t
	}

	if sev, ok := raw["severity"].(string); ok {
		c.Severity = entities.ParseSeverity(sev)
	}

	if slots := stringList(raw["affected_slots"]); len(slots) > 0 {
		c.AffectedSlots = slots
	} else if slots := stringList(raw["affectedSlots"]); slots != nil {
		c.AffectedSlots = slots
	}

	if desc, ok := scalarString(raw["description"]); ok {
		c.Description = desc
	}
	if res, ok := scalarString(raw["resolution"]); ok {
		c.Resolution = res
	}
	c.Resolved = truthy(raw["resolved"])

	return c
}

// scalarString renders a JSON scalar as a string. Objects, arrays and null are absent.
func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}

// stringList returns nil when v is not an array, and a non-nil list otherwise.
// Non-scalar elements are skipped.
func stringList(v any) []string {
	var items []any
	switch val := v.(type) {
	case []any:
		items = val
	case []string:
		return append([]string{}, val...)
	default:
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := scalarString(item); ok {
			out = append(out, s)
		}
	}
	return out
}

// truthy follows JSON-ish truthiness: false, 0, "", null and absent are false.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case int:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err == nil && f != 0
	case string:
		return val != ""
	default:
		return true
	}
}
