package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// JSONParser parses a complete TimetablePayload from JSON.
type JSONParser struct{}

// Parse replaces into with the payload read from r. Missing lists become empty.
func (p *JSONParser) Parse(r io.Reader, into *entities.TimetablePayload) error {
	var payload entities.TimetablePayload

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&payload); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}

	normalizePayload(&payload)
	*into = payload
	return nil
}
