// Package parsers provides parsers for importing timetable data from files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// Parser reads timetable data into a payload.
// Implementations decide how much of the payload the input replaces.
type Parser interface {
	Parse(r io.Reader, into *entities.TimetablePayload) error
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// normalizePayload replaces nil lists with empty ones so the payload
// serializes with all four sequences present.
func normalizePayload(p *entities.TimetablePayload) {
	*p = p.WithEmptyLists()
}
