package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// shapeValidator checks the declarative shape structs below.
var shapeValidator = validator.New(validator.WithRequiredStructEnabled())

// ParseResult is the outcome of checking stored bytes against a Schema.
// Exactly one of Value (when Err is nil) or Err is meaningful.
type ParseResult[T any] struct {
	Value T
	Err   error
}

// OK reports whether the bytes matched the schema.
func (r ParseResult[T]) OK() bool {
	return r.Err == nil
}

// Schema turns raw stored bytes into a typed value or a rejection.
type Schema[T any] interface {
	Parse(data []byte) ParseResult[T]
}

// shapeSchema validates JSON against a shape struct before decoding into T.
// Shapes use pointer fields so "absent" and "wrong type" are both rejected.
type shapeSchema[T any] struct {
	newShape func() any
}

// NewSchema builds a Schema from a constructor for its shape struct.
// newShape must return a pointer to a struct carrying validate tags.
func NewSchema[T any](newShape func() any) Schema[T] {
	return shapeSchema[T]{newShape: newShape}
}

// Parse decodes data into the shape, validates it, then decodes into T.
func (s shapeSchema[T]) Parse(data []byte) ParseResult[T] {
	shape := s.newShape()
	if err := json.Unmarshal(data, shape); err != nil {
		return ParseResult[T]{Err: fmt.Errorf("parsing snapshot: %w", err)}
	}
	if err := shapeValidator.Struct(shape); err != nil {
		return ParseResult[T]{Err: fmt.Errorf("validating snapshot: %w", err)}
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return ParseResult[T]{Err: fmt.Errorf("decoding snapshot: %w", err)}
	}
	return ParseResult[T]{Value: value}
}

// Shared shape pieces. Every snapshot shape composes these as fields.

// payloadShape requires the four sequence fields of a TimetablePayload.
// Elements are not inspected and references are not resolved.
type payloadShape struct {
	Faculty   *[]json.RawMessage `json:"faculty" validate:"required"`
	Courses   *[]json.RawMessage `json:"courses" validate:"required"`
	Rooms     *[]json.RawMessage `json:"rooms" validate:"required"`
	Timetable *[]json.RawMessage `json:"timetable" validate:"required"`
}

type resultShape struct {
	Label         *string       `json:"label" validate:"required"`
	HardConflicts *int          `json:"hard_conflicts" validate:"required"`
	SoftConflicts *int          `json:"soft_conflicts"`
	Fitness       *float64      `json:"fitness" validate:"required"`
	Payload       *payloadShape `json:"payload" validate:"required"`
}

type draftShape struct {
	Version     *float64      `json:"version" validate:"required,eq=1"`
	GeneratedAt *string       `json:"generated_at" validate:"required"`
	ProgramID   *string       `json:"program_id"`
	Source      *string       `json:"source" validate:"required,oneof=generator schedule"`
	TermNumber  *int          `json:"term_number"`
	Payload     *payloadShape `json:"payload" validate:"required"`
}

type singleResultShape struct {
	Version     *float64     `json:"version" validate:"required,eq=1"`
	GeneratedAt *string      `json:"generated_at" validate:"required"`
	ProgramID   *string      `json:"program_id"`
	Mode        *string      `json:"mode" validate:"required,eq=single"`
	Result      *resultShape `json:"result" validate:"required"`
}

type termShape struct {
	TermNumber *int         `json:"term_number" validate:"required"`
	Result     *resultShape `json:"result" validate:"required"`
}

type cycleResultShape struct {
	Version     *float64     `json:"version" validate:"required,eq=1"`
	GeneratedAt *string      `json:"generated_at" validate:"required"`
	ProgramID   *string      `json:"program_id"`
	Mode        *string      `json:"mode" validate:"required,eq=cycle"`
	Terms       *[]termShape `json:"terms" validate:"required,dive"`
}

var (
	// DraftSchema accepts version-1 draft envelopes.
	DraftSchema = NewSchema[entities.GeneratedDraftSnapshot](func() any { return &draftShape{} })

	// SingleResultSchema accepts version-1 single-result envelopes.
	SingleResultSchema = NewSchema[entities.GeneratedResultsSnapshot](func() any { return &singleResultShape{} })

	// CycleResultSchema accepts version-1 cycle-result envelopes.
	CycleResultSchema = NewSchema[entities.GeneratedResultsSnapshot](func() any { return &cycleResultShape{} })

	// ResultsSchema dispatches on the envelope's mode.
	ResultsSchema Schema[entities.GeneratedResultsSnapshot] = resultsSchema{}
)

var errUnknownResultsMode = errors.New("validating snapshot: unknown results mode")

type resultsSchema struct{}

// Parse picks the single or cycle schema from the mode discriminant.
func (resultsSchema) Parse(data []byte) ParseResult[entities.GeneratedResultsSnapshot] {
	var probe struct {
		Mode string `json:"mode"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ParseResult[entities.GeneratedResultsSnapshot]{Err: fmt.Errorf("parsing snapshot: %w", err)}
	}

	switch entities.ResultsMode(probe.Mode) {
	case entities.ResultsSingle:
		return SingleResultSchema.Parse(data)
	case entities.ResultsCycle:
		return CycleResultSchema.Parse(data)
	default:
		return ParseResult[entities.GeneratedResultsSnapshot]{Err: fmt.Errorf("%w %q", errUnknownResultsMode, probe.Mode)}
	}
}
