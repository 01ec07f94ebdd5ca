package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/ports"
)

// VersionService lists, compares and publishes official timetable versions.
// It is a thin typed proxy: diffing and conflict gating happen on the backend.
type VersionService struct {
	api ports.TimetableAPI
}

// NewVersionService creates a new VersionService.
func NewVersionService(api ports.TimetableAPI) *VersionService {
	return &VersionService{api: api}
}

// List returns published versions, or an empty list when signed out.
func (s *VersionService) List(ctx context.Context) ([]entities.TimetableVersion, error) {
	versions, err := s.api.ListVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}
	if versions == nil {
		versions = []entities.TimetableVersion{}
	}
	return versions, nil
}

// Compare asks the backend to diff two existing versions.
func (s *VersionService) Compare(ctx context.Context, fromID, toID string) (*entities.VersionComparison, error) {
	fromID, toID = strings.TrimSpace(fromID), strings.TrimSpace(toID)
	if fromID == "" || toID == "" {
		return nil, errors.New("both version ids are required")
	}

	cmp, err := s.api.CompareVersions(ctx, fromID, toID)
	if err != nil {
		return nil, fmt.Errorf("comparing versions: %w", err)
	}
	return cmp, nil
}

// Trends returns one point per version in the backend's order.
// The series is not re-sorted here.
func (s *VersionService) Trends(ctx context.Context) ([]entities.TrendPoint, error) {
	points, err := s.api.Trends(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching trends: %w", err)
	}
	if points == nil {
		points = []entities.TrendPoint{}
	}
	return points, nil
}

// Publish replaces the official timetable. The label is trimmed and force is
// relayed as given; whether a conflict gate applies is the backend's decision.
func (s *VersionService) Publish(ctx context.Context, payload entities.TimetablePayload, label string, force bool) (*entities.PublishResult, error) {
	opts := entities.PublishOptions{
		VersionLabel: strings.TrimSpace(label),
		Force:        force,
	}

	result, err := s.api.PublishOfficial(ctx, payload, opts)
	if err != nil {
		return nil, fmt.Errorf("publishing timetable: %w", err)
	}
	return result, nil
}

// Decide submits a yes/no decision against a conflict.
func (s *VersionService) Decide(ctx context.Context, conflictID string, decision entities.Decision, note string) (*entities.DecisionResult, error) {
	conflictID = strings.TrimSpace(conflictID)
	if conflictID == "" {
		return nil, errors.New("conflict id is required")
	}
	if !decision.IsValid() {
		return nil, fmt.Errorf("invalid decision %q: must be yes or no", decision)
	}

	result, err := s.api.DecideConflict(ctx, conflictID, entities.ConflictDecision{
		Decision: decision,
		Note:     strings.TrimSpace(note),
	})
	if err != nil {
		return nil, fmt.Errorf("submitting decision: %w", err)
	}
	return result, nil
}
