package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/ports"
)

// Fixed storage keys, one slot each.
const (
	DraftSnapshotKey   = "timetable.generated-draft.v1"
	ResultsSnapshotKey = "timetable.generated-results.v1"
)

// Operation names reported to the FailureObserver.
const (
	OpSnapshotSave  = "snapshot.save"
	OpSnapshotLoad  = "snapshot.load"
	OpSnapshotClear = "snapshot.clear"
)

// SnapshotStore keeps a single validated snapshot under a fixed key.
//
// Failures never reach the caller: a failed Save is a no-op, a failed or rejected
// Load is an empty result. Every absorbed failure is reported to the observer.
type SnapshotStore[T any] struct {
	kv       ports.KeyValueStore
	key      string
	schema   Schema[T]
	observer ports.FailureObserver
	// prepare, when set, rewrites a value into the form its schema accepts
	// before it is written.
	prepare func(T) T
}

// NewSnapshotStore creates a store for key. A nil observer discards failures.
func NewSnapshotStore[T any](kv ports.KeyValueStore, key string, schema Schema[T], observer ports.FailureObserver) *SnapshotStore[T] {
	if observer == nil {
		observer = discardObserver{}
	}
	return &SnapshotStore[T]{
		kv:       kv,
		key:      key,
		schema:   schema,
		observer: observer,
	}
}

// NewDraftStore creates the generated-draft snapshot store.
func NewDraftStore(kv ports.KeyValueStore, observer ports.FailureObserver) *SnapshotStore[entities.GeneratedDraftSnapshot] {
	store := NewSnapshotStore(kv, DraftSnapshotKey, DraftSchema, observer)
	store.prepare = prepareDraft
	return store
}

// NewResultsStore creates the generated-results snapshot store.
func NewResultsStore(kv ports.KeyValueStore, observer ports.FailureObserver) *SnapshotStore[entities.GeneratedResultsSnapshot] {
	store := NewSnapshotStore(kv, ResultsSnapshotKey, ResultsSchema, observer)
	store.prepare = prepareResults
	return store
}

// prepareDraft writes nil payload lists as empty arrays.
func prepareDraft(d entities.GeneratedDraftSnapshot) entities.GeneratedDraftSnapshot {
	d.Payload = d.Payload.WithEmptyLists()
	return d
}

// prepareResults writes nil payload lists and a nil term list as empty arrays.
// The caller's result and terms are copied, not modified.
func prepareResults(r entities.GeneratedResultsSnapshot) entities.GeneratedResultsSnapshot {
	if r.Result != nil {
		result := *r.Result
		result.Payload = result.Payload.WithEmptyLists()
		r.Result = &result
	}
	terms := make([]entities.TermResult, len(r.Terms))
	for i, term := range r.Terms {
		term.Result.Payload = term.Result.Payload.WithEmptyLists()
		terms[i] = term
	}
	r.Terms = terms
	return r
}

// Key returns the storage key this store owns.
func (s *SnapshotStore[T]) Key() string {
	return s.key
}

// Save overwrites the stored snapshot with value.
func (s *SnapshotStore[T]) Save(ctx context.Context, value T) {
	if s.prepare != nil {
		value = s.prepare(value)
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.observer.ObserveFailure(ctx, OpSnapshotSave, s.key, fmt.Errorf("marshaling snapshot: %w", err))
		return
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		s.observer.ObserveFailure(ctx, OpSnapshotSave, s.key, fmt.Errorf("writing snapshot: %w", err))
	}
}

// Load returns the stored snapshot, or false if it is absent or invalid.
func (s *SnapshotStore[T]) Load(ctx context.Context) (T, bool) {
	var zero T

	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.observer.ObserveFailure(ctx, OpSnapshotLoad, s.key, fmt.Errorf("reading snapshot: %w", err))
		return zero, false
	}
	if data == nil {
		return zero, false
	}

	result := s.schema.Parse(data)
	if !result.OK() {
		s.observer.ObserveFailure(ctx, OpSnapshotLoad, s.key, result.Err)
		return zero, false
	}
	return result.Value, true
}

// Clear removes the stored snapshot. Clearing an empty store is a no-op.
func (s *SnapshotStore[T]) Clear(ctx context.Context) {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		s.observer.ObserveFailure(ctx, OpSnapshotClear, s.key, fmt.Errorf("deleting snapshot: %w", err))
	}
}

type discardObserver struct{}

func (discardObserver) ObserveFailure(context.Context, string, string, error) {}
