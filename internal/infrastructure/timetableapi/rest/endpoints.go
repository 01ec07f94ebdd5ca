package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// Resource paths relative to the base URL.
const (
	pathOfficial          = "/api/timetable/official"
	pathFacultyMapping    = "/api/timetable/official/faculty-mapping"
	pathVersions          = "/api/timetable/versions"
	pathCompare           = "/api/timetable/versions/compare"
	pathTrends            = "/api/timetable/trends"
	pathConflicts         = "/api/timetable/conflicts"
	pathAnalyze           = "/api/timetable/conflicts/analyze"
	pathResolve           = "/api/conflicts/resolve"
	pathAnalytics         = "/api/timetable/analytics"
	pathPublishOffline    = "/api/timetable/publish-offline"
	pathPublishOfflineAll = "/api/timetable/publish-offline/all"
)

func decisionPath(conflictID string) string {
	return "/api/timetable/conflicts/" + url.PathEscape(conflictID) + "/decision"
}

// GetOfficialTimetable implements ports.TimetableAPI.
func (c *Client) GetOfficialTimetable(ctx context.Context) (*entities.OfficialTimetable, error) {
	var out entities.OfficialTimetable
	found, err := c.do(ctx, request{
		method:        http.MethodGet,
		path:          pathOfficial,
		fallback:      "Failed to fetch official timetable",
		notFoundEmpty: true,
	}, &out)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

// PublishOfficial implements ports.TimetableAPI.
// versionLabel is sent only when non-empty and force only when true.
func (c *Client) PublishOfficial(ctx context.Context, payload entities.TimetablePayload, opts entities.PublishOptions) (*entities.PublishResult, error) {
	query := url.Values{}
	if opts.VersionLabel != "" {
		query.Set("versionLabel", opts.VersionLabel)
	}
	if opts.Force {
		query.Set("force", "true")
	}

	var out entities.PublishResult
	if _, err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     pathOfficial,
		query:    query,
		body:     payload,
		fallback: "Failed to publish timetable",
		mutating: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListVersions implements ports.TimetableAPI.
func (c *Client) ListVersions(ctx context.Context) ([]entities.TimetableVersion, error) {
	var out []entities.TimetableVersion
	if _, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathVersions,
		fallback: "Failed to fetch versions",
	}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.TimetableVersion{}
	}
	return out, nil
}

// CompareVersions implements ports.TimetableAPI.
func (c *Client) CompareVersions(ctx context.Context, fromID, toID string) (*entities.VersionComparison, error) {
	var out entities.VersionComparison
	if _, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathCompare,
		query:    url.Values{"from": {fromID}, "to": {toID}},
		fallback: "Failed to compare versions",
		mutating: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Trends implements ports.TimetableAPI.
func (c *Client) Trends(ctx context.Context) ([]entities.TrendPoint, error) {
	var out []entities.TrendPoint
	if _, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathTrends,
		fallback: "Failed to fetch trends",
	}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.TrendPoint{}
	}
	return out, nil
}

// ListConflicts implements ports.TimetableAPI.
func (c *Client) ListConflicts(ctx context.Context) ([]entities.RawConflict, error) {
	var out []entities.RawConflict
	if _, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathConflicts,
		fallback: "Failed to fetch conflicts",
	}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.RawConflict{}
	}
	return out, nil
}

// AnalyzeConflicts implements ports.TimetableAPI.
func (c *Client) AnalyzeConflicts(ctx context.Context, payload entities.TimetablePayload) (*entities.ConflictAnalysis, error) {
	var out entities.ConflictAnalysis
	if _, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     pathAnalyze,
		body:     payload,
		fallback: "Failed to analyze conflicts",
		mutating: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveConflict implements ports.TimetableAPI.
func (c *Client) ResolveConflict(ctx context.Context, req entities.ResolveRequest) (*entities.ResolveResult, error) {
	var out entities.ResolveResult
	if _, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     pathResolve,
		body:     req,
		fallback: "Failed to resolve conflict",
		mutating: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DecideConflict implements ports.TimetableAPI.
func (c *Client) DecideConflict(ctx context.Context, conflictID string, decision entities.ConflictDecision) (*entities.DecisionResult, error) {
	var out entities.DecisionResult
	if _, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     decisionPath(conflictID),
		body:     decision,
		fallback: "Failed to submit decision",
		mutating: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analytics implements ports.TimetableAPI.
func (c *Client) Analytics(ctx context.Context) (*entities.Analytics, error) {
	var out entities.Analytics
	found, err := c.do(ctx, request{
		method:        http.MethodGet,
		path:          pathAnalytics,
		fallback:      "Failed to fetch analytics",
		notFoundEmpty: true,
	}, &out)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

// offlineRequest is the body of a targeted offline publish.
type offlineRequest struct {
	FacultyIDs []string `json:"faculty_ids"`
}

// PublishOffline implements ports.TimetableAPI.
func (c *Client) PublishOffline(ctx context.Context, facultyIDs []string) (*entities.OfflinePublishResult, error) {
	if facultyIDs == nil {
		facultyIDs = []string{}
	}

	var out entities.OfflinePublishResult
	if _, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     pathPublishOffline,
		body:     offlineRequest{FacultyIDs: facultyIDs},
		fallback: "Failed to publish offline",
		mutating: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublishOfflineAll implements ports.TimetableAPI.
func (c *Client) PublishOfflineAll(ctx context.Context) (*entities.OfflinePublishResult, error) {
	var out entities.OfflinePublishResult
	if _, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     pathPublishOfflineAll,
		fallback: "Failed to publish offline",
		mutating: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FacultyMapping implements ports.TimetableAPI.
func (c *Client) FacultyMapping(ctx context.Context) ([]entities.FacultyMapping, error) {
	var out []entities.FacultyMapping
	if _, err := c.do(ctx, request{
		method:        http.MethodGet,
		path:          pathFacultyMapping,
		fallback:      "Failed to fetch faculty mapping",
		notFoundEmpty: true,
	}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.FacultyMapping{}
	}
	return out, nil
}
