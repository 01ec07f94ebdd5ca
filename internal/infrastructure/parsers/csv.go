package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// CSVParser parses time slots from CSV format.
type CSVParser struct{}

var requiredSlotColumns = []string{
	"id", "day", "start_time", "end_time", "course_id", "room_id", "faculty_id", "section",
}

// Parse reads slots from r and merges them into the payload's timetable.
// A slot whose id already exists replaces it in place; new slots are appended.
// Expected columns: id, day, start_time, end_time, course_id, room_id, faculty_id,
// section, and optionally batch, session_type.
func (p *CSVParser) Parse(r io.Reader, into *entities.TimetablePayload) error {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return err
	}

	slots, err := p.readRecords(reader, colIndex)
	if err != nil {
		return err
	}

	normalizePayload(into)
	into.Timetable = mergeSlots(into.Timetable, slots)
	return nil
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range requiredSlotColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to slots.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]entities.TimeSlot, error) {
	var slots []entities.TimeSlot
	seen := make(map[string]int)
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		slot, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[slot.ID]; dup {
			return nil, fmt.Errorf("line %d: duplicate slot id %q (first seen on line %d)", lineNum, slot.ID, first)
		}
		seen[slot.ID] = lineNum
		slots = append(slots, slot)
	}

	return slots, nil
}

// parseRecord converts a CSV record to a validated TimeSlot.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (entities.TimeSlot, error) {
	slot := entities.TimeSlot{
		ID:          getColumn(record, colIndex, "id"),
		Day:         normalizeDay(getColumn(record, colIndex, "day")),
		StartTime:   getColumn(record, colIndex, "start_time"),
		EndTime:     getColumn(record, colIndex, "end_time"),
		CourseID:    getColumn(record, colIndex, "course_id"),
		RoomID:      getColumn(record, colIndex, "room_id"),
		FacultyID:   getColumn(record, colIndex, "faculty_id"),
		Section:     getColumn(record, colIndex, "section"),
		Batch:       getColumn(record, colIndex, "batch"),
		SessionType: entities.SessionType(strings.ToLower(getColumn(record, colIndex, "session_type"))),
	}

	if err := slot.Validate(); err != nil {
		return entities.TimeSlot{}, fmt.Errorf("line %d: %w", lineNum, err)
	}

	return slot, nil
}

// normalizeDay maps any casing of a weekday name onto its canonical form.
func normalizeDay(raw string) entities.Day {
	for _, d := range entities.Weekdays {
		if strings.EqualFold(string(d), raw) {
			return d
		}
	}
	return entities.Day(raw)
}

// mergeSlots upserts incoming slots by id, keeping existing order.
func mergeSlots(existing, incoming []entities.TimeSlot) []entities.TimeSlot {
	merged := make([]entities.TimeSlot, len(existing), len(existing)+len(incoming))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, s := range merged {
		index[s.ID] = i
	}

	for _, s := range incoming {
		if i, ok := index[s.ID]; ok {
			merged[i] = s
			continue
		}
		index[s.ID] = len(merged)
		merged = append(merged, s)
	}
	return merged
}

// getColumn safely retrieves a trimmed column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
