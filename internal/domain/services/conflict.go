package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/ports"
)

// ConflictService fetches and resolves conflicts on the official timetable.
type ConflictService struct {
	api ports.TimetableAPI
}

// NewConflictService creates a new ConflictService.
func NewConflictService(api ports.TimetableAPI) *ConflictService {
	return &ConflictService{api: api}
}

// List returns the normalized conflicts of the official timetable.
func (s *ConflictService) List(ctx context.Context) (entities.ConflictReport, error) {
	raw, err := s.api.ListConflicts(ctx)
	if err != nil {
		return entities.ConflictReport{}, fmt.Errorf("listing conflicts: %w", err)
	}
	return NormalizeConflicts(raw), nil
}

// Analyze runs the backend's richer analysis, which also suggests resolutions.
func (s *ConflictService) Analyze(ctx context.Context, payload entities.TimetablePayload) (entities.ConflictReport, error) {
	analysis, err := s.api.AnalyzeConflicts(ctx, payload)
	if err != nil {
		return entities.ConflictReport{}, fmt.Errorf("analyzing conflicts: %w", err)
	}

	if analysis == nil {
		return NormalizeConflicts(nil), nil
	}

	report := NormalizeConflicts(analysis.Conflicts)
	if analysis.Suggestions != nil {
		report.Suggestions = analysis.Suggestions
	}
	return report, nil
}

// Resolve applies a resolution action to a conflict.
func (s *ConflictService) Resolve(ctx context.Context, conflictID string, action entities.ResolutionAction) (*entities.ResolveResult, error) {
	conflictID = strings.TrimSpace(conflictID)
	if conflictID == "" {
		return nil, errors.New("conflict id is required")
	}
	if strings.TrimSpace(action.ActionType) == "" {
		return nil, errors.New("action type is required")
	}

	result, err := s.api.ResolveConflict(ctx, entities.ResolveRequest{
		ConflictID: conflictID,
		Action:     action,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving conflict: %w", err)
	}
	return result, nil
}
