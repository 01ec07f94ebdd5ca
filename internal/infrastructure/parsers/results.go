package parsers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
)

// GeneratorOutput is what the generator produced: one result, or one per term.
type GeneratorOutput struct {
	Mode   entities.ResultsMode
	Result *entities.GenerationResult
	Terms  []entities.TermResult
}

// ParseResults reads generator output from JSON. Accepted shapes are a single
// result object, {"result": {...}}, a list of term results, or {"terms": [...]}.
func ParseResults(r io.Reader) (*GeneratorOutput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("parsing results: empty input")
	}

	if data[0] == '[' {
		var terms []entities.TermResult
		if err := json.Unmarshal(data, &terms); err != nil {
			return nil, fmt.Errorf("parsing results: %w", err)
		}
		return cycleOutput(terms), nil
	}

	var wrapper struct {
		Result *entities.GenerationResult `json:"result"`
		Terms  *[]entities.TermResult     `json:"terms"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}

	switch {
	case wrapper.Terms != nil:
		return cycleOutput(*wrapper.Terms), nil
	case wrapper.Result != nil:
		normalizePayload(&wrapper.Result.Payload)
		return &GeneratorOutput{Mode: entities.ResultsSingle, Result: wrapper.Result}, nil
	}

	var single entities.GenerationResult
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}
	if single.Label == "" {
		return nil, errors.New("parsing results: expected a result with a label, or a list of terms")
	}
	normalizePayload(&single.Payload)
	return &GeneratorOutput{Mode: entities.ResultsSingle, Result: &single}, nil
}

func cycleOutput(terms []entities.TermResult) *GeneratorOutput {
	if terms == nil {
		terms = []entities.TermResult{}
	}
	for i := range terms {
		normalizePayload(&terms[i].Result.Payload)
	}
	return &GeneratorOutput{Mode: entities.ResultsCycle, Terms: terms}
}
