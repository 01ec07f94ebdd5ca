// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// TimetableAPI is a mock implementation of ports.TimetableAPI.
type TimetableAPI struct {
	Official       *entities.OfficialTimetable
	PublishResult  *entities.PublishResult
	Versions       []entities.TimetableVersion
	Comparison     *entities.VersionComparison
	TrendPoints    []entities.TrendPoint
	RawConflicts   []entities.RawConflict
	Analysis       *entities.ConflictAnalysis
	Resolve        *entities.ResolveResult
	Decision       *entities.DecisionResult
	AnalyticsValue *entities.Analytics
	Offline        *entities.OfflinePublishResult
	Mapping        []entities.FacultyMapping

	// Err is returned by every call when set.
	Err error

	// Call tracking
	PublishCallCount    int
	PublishLastPayload  entities.TimetablePayload
	PublishLastOptions  entities.PublishOptions
	CompareLastFrom     string
	CompareLastTo       string
	AnalyzeLastPayload  entities.TimetablePayload
	ResolveLastRequest  entities.ResolveRequest
	DecideLastID        string
	DecideLastDecision  entities.ConflictDecision
	OfflineLastFaculty  []string
	OfflineAllCallCount int
}

// GetOfficialTimetable returns the configured official timetable.
func (m *TimetableAPI) GetOfficialTimetable(ctx context.Context) (*entities.OfficialTimetable, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Official, nil
}

// PublishOfficial records the publish and returns the configured result.
func (m *TimetableAPI) PublishOfficial(ctx context.Context, payload entities.TimetablePayload, opts entities.PublishOptions) (*entities.PublishResult, error) {
	m.PublishCallCount++
	m.PublishLastPayload = payload
	m.PublishLastOptions = opts
	if m.Err != nil {
		return nil, m.Err
	}
	if m.PublishResult == nil {
		return &entities.PublishResult{Message: "published"}, nil
	}
	return m.PublishResult, nil
}

// ListVersions returns the configured versions.
func (m *TimetableAPI) ListVersions(ctx context.Context) ([]entities.TimetableVersion, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Versions, nil
}

// CompareVersions records the ids and returns the configured comparison.
func (m *TimetableAPI) CompareVersions(ctx context.Context, fromID, toID string) (*entities.VersionComparison, error) {
	m.CompareLastFrom = fromID
	m.CompareLastTo = toID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Comparison, nil
}

// Trends returns the configured trend points.
func (m *TimetableAPI) Trends(ctx context.Context) ([]entities.TrendPoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.TrendPoints, nil
}

// ListConflicts returns the configured raw conflicts.
func (m *TimetableAPI) ListConflicts(ctx context.Context) ([]entities.RawConflict, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.RawConflicts, nil
}

// AnalyzeConflicts records the payload and returns the configured analysis.
func (m *TimetableAPI) AnalyzeConflicts(ctx context.Context, payload entities.TimetablePayload) (*entities.ConflictAnalysis, error) {
	m.AnalyzeLastPayload = payload
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Analysis, nil
}

// ResolveConflict records the request and returns the configured result.
func (m *TimetableAPI) ResolveConflict(ctx context.Context, req entities.ResolveRequest) (*entities.ResolveResult, error) {
	m.ResolveLastRequest = req
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Resolve, nil
}

// DecideConflict records the decision and returns the configured result.
func (m *TimetableAPI) DecideConflict(ctx context.Context, conflictID string, decision entities.ConflictDecision) (*entities.DecisionResult, error) {
	m.DecideLastID = conflictID
	m.DecideLastDecision = decision
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Decision, nil
}

// Analytics returns the configured analytics.
func (m *TimetableAPI) Analytics(ctx context.Context) (*entities.Analytics, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.AnalyticsValue, nil
}

// PublishOffline records the faculty ids and returns the configured result.
func (m *TimetableAPI) PublishOffline(ctx context.Context, facultyIDs []string) (*entities.OfflinePublishResult, error) {
	m.OfflineLastFaculty = facultyIDs
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Offline, nil
}

// PublishOfflineAll counts the call and returns the configured result.
func (m *TimetableAPI) PublishOfflineAll(ctx context.Context) (*entities.OfflinePublishResult, error) {
	m.OfflineAllCallCount++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Offline, nil
}

// FacultyMapping returns the configured mapping.
func (m *TimetableAPI) FacultyMapping(ctx context.Context) ([]entities.FacultyMapping, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Mapping, nil
}
