package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/infrastructure/parsers"
)

// PayloadSource names a file holding a timetable payload.
type PayloadSource struct {
	Path   string
	Format string // "json", "csv", or "auto"
}

// baseFunc supplies the payload a partial (CSV) import is merged into.
type baseFunc func(ctx context.Context) (entities.TimetablePayload, error)

// emptyBase merges partial imports into an empty payload.
func emptyBase(context.Context) (entities.TimetablePayload, error) {
	return entities.EmptyPayload(), nil
}

// loadPayload reads src, merging partial formats into the payload from base.
func loadPayload(ctx context.Context, src PayloadSource, base baseFunc) (entities.TimetablePayload, error) {
	var parser parsers.Parser
	if src.Format == "" || src.Format == "auto" {
		parser = parsers.ForFile(src.Path)
	} else {
		parser = parsers.ForFormat(src.Format)
	}
	if parser == nil {
		return entities.TimetablePayload{}, fmt.Errorf("unsupported format for file: %s", src.Path)
	}

	file, err := os.Open(src.Path)
	if err != nil {
		return entities.TimetablePayload{}, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	payload := entities.EmptyPayload()
	if _, partial := parser.(*parsers.CSVParser); partial {
		if payload, err = base(ctx); err != nil {
			return entities.TimetablePayload{}, err
		}
	}

	if err := parser.Parse(file, &payload); err != nil {
		return entities.TimetablePayload{}, fmt.Errorf("parsing file: %w", err)
	}
	return payload, nil
}
