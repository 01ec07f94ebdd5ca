package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/services"
)

// ErrNoDraft means no usable draft snapshot is stored.
var ErrNoDraft = errors.New("no saved draft")

// DraftHandler manages the locally cached draft timetable.
type DraftHandler struct {
	store    *services.SnapshotStore[entities.GeneratedDraftSnapshot]
	results  *services.SnapshotStore[entities.GeneratedResultsSnapshot]
	versions *services.VersionService
	detector *services.ClashDetector
	now      func() time.Time
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(
	store *services.SnapshotStore[entities.GeneratedDraftSnapshot],
	results *services.SnapshotStore[entities.GeneratedResultsSnapshot],
	versions *services.VersionService,
	detector *services.ClashDetector,
) *DraftHandler {
	return &DraftHandler{
		store:    store,
		results:  results,
		versions: versions,
		detector: detector,
		now:      time.Now,
	}
}

// DraftOptions describes where a draft came from.
type DraftOptions struct {
	Source     entities.DraftSource
	ProgramID  string
	TermNumber int
}

// HandleSave reads a payload from src and caches it as the draft.
func (h *DraftHandler) HandleSave(ctx context.Context, src PayloadSource, opts DraftOptions) (*entities.GeneratedDraftSnapshot, error) {
	payload, err := loadPayload(ctx, src, emptyBase)
	if err != nil {
		return nil, err
	}
	if opts.Source == "" {
		opts.Source = entities.DraftSourceSchedule
	}
	return h.save(ctx, payload, opts), nil
}

// HandleSaveFromResults promotes a cached generation result to the draft.
// term selects the term of a cycle result and is ignored for single results.
func (h *DraftHandler) HandleSaveFromResults(ctx context.Context, term int) (*entities.GeneratedDraftSnapshot, error) {
	results, ok := h.results.Load(ctx)
	if !ok {
		return nil, ErrNoResults
	}

	opts := DraftOptions{Source: entities.DraftSourceGenerator}
	if results.ProgramID != nil {
		opts.ProgramID = *results.ProgramID
	}

	var payload entities.TimetablePayload
	switch results.Mode {
	case entities.ResultsSingle:
		payload = results.Result.Payload
	case entities.ResultsCycle:
		found := false
		for _, tr := range results.Terms {
			if tr.TermNumber == term {
				payload = tr.Result.Payload
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no results for term %d", term)
		}
		opts.TermNumber = term
	default:
		return nil, fmt.Errorf("unknown results mode %q", results.Mode)
	}

	return h.save(ctx, payload, opts), nil
}

func (h *DraftHandler) save(ctx context.Context, payload entities.TimetablePayload, opts DraftOptions) *entities.GeneratedDraftSnapshot {
	draft := entities.GeneratedDraftSnapshot{
		Version:     entities.SnapshotVersion,
		Source:      opts.Source,
		GeneratedAt: h.now().UTC().Format(time.RFC3339),
		Payload:     payload,
	}
	if id := strings.TrimSpace(opts.ProgramID); id != "" {
		draft.ProgramID = &id
	}
	if opts.TermNumber > 0 {
		term := opts.TermNumber
		draft.TermNumber = &term
	}

	h.store.Save(ctx, draft)
	return &draft
}

// HandleShow returns the cached draft.
func (h *DraftHandler) HandleShow(ctx context.Context) (*entities.GeneratedDraftSnapshot, error) {
	draft, ok := h.store.Load(ctx)
	if !ok {
		return nil, ErrNoDraft
	}
	return &draft, nil
}

// HandleCheck runs the local clash preview over the cached draft.
func (h *DraftHandler) HandleCheck(ctx context.Context) (entities.ConflictReport, error) {
	draft, ok := h.store.Load(ctx)
	if !ok {
		return entities.ConflictReport{}, ErrNoDraft
	}
	return h.detector.Detect(draft.Payload), nil
}

// HandlePublish publishes the cached draft. The draft is cleared only
// once the backend accepts it.
func (h *DraftHandler) HandlePublish(ctx context.Context, label string, force bool) (*entities.PublishResult, error) {
	draft, ok := h.store.Load(ctx)
	if !ok {
		return nil, ErrNoDraft
	}

	result, err := h.versions.Publish(ctx, draft.Payload, label, force)
	if err != nil {
		return nil, err
	}

	h.store.Clear(ctx)
	return result, nil
}

// HandleClear discards the cached draft.
func (h *DraftHandler) HandleClear(ctx context.Context) {
	h.store.Clear(ctx)
}
