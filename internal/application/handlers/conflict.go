package handlers

import (
	"context"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/services"
)

// ConflictHandler handles conflict listing, analysis and resolution.
type ConflictHandler struct {
	service   *services.ConflictService
	timetable *TimetableHandler
}

// NewConflictHandler creates a new ConflictHandler.
func NewConflictHandler(service *services.ConflictService, timetable *TimetableHandler) *ConflictHandler {
	return &ConflictHandler{
		service:   service,
		timetable: timetable,
	}
}

// HandleList returns the official timetable's conflicts.
func (h *ConflictHandler) HandleList(ctx context.Context) (entities.ConflictReport, error) {
	return h.service.List(ctx)
}

// HandleAnalyze runs backend analysis over src, or over the official
// timetable when src has no path.
func (h *ConflictHandler) HandleAnalyze(ctx context.Context, src PayloadSource) (entities.ConflictReport, error) {
	var (
		payload entities.TimetablePayload
		err     error
	)
	if src.Path == "" {
		payload, err = h.timetable.officialBase(ctx)
	} else {
		payload, err = loadPayload(ctx, src, h.timetable.officialBase)
	}
	if err != nil {
		return entities.ConflictReport{}, err
	}
	return h.service.Analyze(ctx, payload)
}

// HandleResolve applies a resolution action to a conflict.
func (h *ConflictHandler) HandleResolve(ctx context.Context, conflictID string, action entities.ResolutionAction) (*entities.ResolveResult, error) {
	return h.service.Resolve(ctx, conflictID, action)
}
