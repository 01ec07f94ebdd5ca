// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
	"errors"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// ErrUnauthenticated is returned by mutating operations when no credential is available.
// Read-only operations degrade to an empty result instead.
var ErrUnauthenticated = errors.New("not authenticated: sign in to continue")

// APIError is a non-success response from the timetable backend.
// Message is the backend's detail string, or a fixed per-call fallback.
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the human-readable message only, so it can be shown as-is.
func (e *APIError) Error() string {
	return e.Message
}

// TimetableAPI is the remote authority for the official timetable.
//
// Read-only calls return a neutral empty result (nil or an empty slice) when no
// credential is available. Mutating calls fail with ErrUnauthenticated.
type TimetableAPI interface {
	// GetOfficialTimetable returns the published timetable, or nil if none exists yet.
	GetOfficialTimetable(ctx context.Context) (*entities.OfficialTimetable, error)

	// PublishOfficial replaces the official timetable with payload.
	PublishOfficial(ctx context.Context, payload entities.TimetablePayload, opts entities.PublishOptions) (*entities.PublishResult, error)

	// ListVersions lists published versions in backend order.
	ListVersions(ctx context.Context) ([]entities.TimetableVersion, error)

	// CompareVersions asks the backend to diff two existing versions.
	CompareVersions(ctx context.Context, fromID, toID string) (*entities.VersionComparison, error)

	// Trends returns one point per version in backend order.
	Trends(ctx context.Context) ([]entities.TrendPoint, error)

	// ListConflicts returns raw conflict records for the official timetable.
	ListConflicts(ctx context.Context) ([]entities.RawConflict, error)

	// AnalyzeConflicts runs the backend's conflict analysis over payload.
	AnalyzeConflicts(ctx context.Context, payload entities.TimetablePayload) (*entities.ConflictAnalysis, error)

	// ResolveConflict applies a resolution action.
	ResolveConflict(ctx context.Context, req entities.ResolveRequest) (*entities.ResolveResult, error)

	// DecideConflict submits a yes/no decision against a conflict.
	DecideConflict(ctx context.Context, conflictID string, decision entities.ConflictDecision) (*entities.DecisionResult, error)

	// Analytics returns timetable analytics, or nil when unavailable.
	Analytics(ctx context.Context) (*entities.Analytics, error)

	// PublishOffline notifies the given faculty members of their timetable.
	PublishOffline(ctx context.Context, facultyIDs []string) (*entities.OfflinePublishResult, error)

	// PublishOfflineAll notifies every faculty member.
	PublishOfflineAll(ctx context.Context) (*entities.OfflinePublishResult, error)

	// FacultyMapping lists faculty-to-user links.
	FacultyMapping(ctx context.Context) ([]entities.FacultyMapping, error)
}
