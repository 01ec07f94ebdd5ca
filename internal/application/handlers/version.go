package handlers

import (
	"context"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/services"
)

// VersionHandler handles version history and publishing.
type VersionHandler struct {
	service   *services.VersionService
	timetable *TimetableHandler
	detector  *services.ClashDetector
}

// NewVersionHandler creates a new VersionHandler.
// timetable supplies the base payload when a CSV of slot edits is published.
func NewVersionHandler(service *services.VersionService, timetable *TimetableHandler, detector *services.ClashDetector) *VersionHandler {
	return &VersionHandler{
		service:   service,
		timetable: timetable,
		detector:  detector,
	}
}

// HandleList returns published versions.
func (h *VersionHandler) HandleList(ctx context.Context) ([]entities.TimetableVersion, error) {
	return h.service.List(ctx)
}

// HandleCompare diffs two versions.
func (h *VersionHandler) HandleCompare(ctx context.Context, fromID, toID string) (*entities.VersionComparison, error) {
	return h.service.Compare(ctx, fromID, toID)
}

// HandleTrends returns the per-version trend series.
func (h *VersionHandler) HandleTrends(ctx context.Context) ([]entities.TrendPoint, error) {
	return h.service.Trends(ctx)
}

// PublishOptions controls a publish from a file.
type PublishOptions struct {
	Label string
	Force bool
	// DryRun stops after the local clash preview.
	DryRun bool
}

// PublishOutcome reports a publish and the clash preview taken before it.
type PublishOutcome struct {
	Preview   entities.ConflictReport
	Result    *entities.PublishResult
	Published bool
}

// HandlePublish reads a payload from src and publishes it.
// CSV sources are merged onto the current official timetable first.
// The local preview never blocks the publish; the backend gates on conflicts.
func (h *VersionHandler) HandlePublish(ctx context.Context, src PayloadSource, opts PublishOptions) (*PublishOutcome, error) {
	payload, err := loadPayload(ctx, src, h.timetable.officialBase)
	if err != nil {
		return nil, err
	}

	outcome := &PublishOutcome{Preview: h.detector.Detect(payload)}
	if opts.DryRun {
		return outcome, nil
	}

	result, err := h.service.Publish(ctx, payload, opts.Label, opts.Force)
	if err != nil {
		return outcome, err
	}
	outcome.Result = result
	outcome.Published = true
	return outcome, nil
}

// HandleDecide submits a yes/no decision against a conflict.
func (h *VersionHandler) HandleDecide(ctx context.Context, conflictID string, decision entities.Decision, note string) (*entities.DecisionResult, error) {
	return h.service.Decide(ctx, conflictID, decision, note)
}
