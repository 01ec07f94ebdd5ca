package entities

import "time"

// TimetableVersion is an immutable published revision of the official timetable.
type TimetableVersion struct {
	ID        string         `json:"id"`
	Label     string         `json:"label"`
	Summary   map[string]any `json:"summary"`
	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
}

// VersionComparison is the backend's diff between two versions.
type VersionComparison struct {
	FromLabel string `json:"from_label"`
	ToLabel   string `json:"to_label"`
	Added     int    `json:"added"`
	Removed   int    `json:"removed"`
	Changed   int    `json:"changed"`
}

// TotalChanges returns the number of slots touched between the two versions.
func (c VersionComparison) TotalChanges() int {
	return c.Added + c.Removed + c.Changed
}

// TrendPoint is one version's quality metrics.
type TrendPoint struct {
	VersionID         string  `json:"version_id"`
	Label             string  `json:"label"`
	SatisfactionScore float64 `json:"satisfaction_score"`
	ConflictCount     int     `json:"conflict_count"`
}

// PublishOptions are passed through verbatim on publish.
type PublishOptions struct {
	VersionLabel string
	Force        bool
}

// PublishResult is the backend's acknowledgement of a publish.
type PublishResult struct {
	Message string `json:"message"`
}

// OfflinePublishResult reports an offline (notification) publish.
type OfflinePublishResult struct {
	Message string `json:"message"`
	Sent    int    `json:"sent"`
}
