package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/services"
	"github.com/ersonp/timetable-sync/internal/infrastructure/parsers"
)

// ErrNoResults means no usable results snapshot is stored.
var ErrNoResults = errors.New("no saved generation results")

// ResultsHandler manages cached generator output.
type ResultsHandler struct {
	store *services.SnapshotStore[entities.GeneratedResultsSnapshot]
	now   func() time.Time
}

// NewResultsHandler creates a new ResultsHandler.
func NewResultsHandler(store *services.SnapshotStore[entities.GeneratedResultsSnapshot]) *ResultsHandler {
	return &ResultsHandler{
		store: store,
		now:   time.Now,
	}
}

// HandleSave reads generator output from path and caches it.
func (h *ResultsHandler) HandleSave(ctx context.Context, path, programID string) (*entities.GeneratedResultsSnapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	output, err := parsers.ParseResults(file)
	if err != nil {
		return nil, err
	}

	snapshot := entities.GeneratedResultsSnapshot{
		Version:     entities.SnapshotVersion,
		Mode:        output.Mode,
		GeneratedAt: h.now().UTC().Format(time.RFC3339),
		Result:      output.Result,
		Terms:       output.Terms,
	}
	if snapshot.Terms == nil {
		snapshot.Terms = []entities.TermResult{}
	}
	if id := strings.TrimSpace(programID); id != "" {
		snapshot.ProgramID = &id
	}

	h.store.Save(ctx, snapshot)
	return &snapshot, nil
}

// HandleShow returns the cached results.
func (h *ResultsHandler) HandleShow(ctx context.Context) (*entities.GeneratedResultsSnapshot, error) {
	results, ok := h.store.Load(ctx)
	if !ok {
		return nil, ErrNoResults
	}
	return &results, nil
}

// HandleClear discards the cached results.
func (h *ResultsHandler) HandleClear(ctx context.Context) {
	h.store.Clear(ctx)
}
