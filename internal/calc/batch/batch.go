package batch

import (
	"errors"
	"fmt"

	hdd "Burmix/internal/calc/SP/hdd-SP"
)

const (
	MinSections = 1
	MaxSections = 20
)

var ErrInvalidSectionCount = errors.New("invalid section count")

type Input struct {
	Title    string      `json:"title,omitempty"`
	Sections []hdd.Input `json:"sections"`
}

type Result struct {
	Count   int          `json:"count"`
	Results []hdd.Result `json:"results"`
}

// Calculate runs every section in order. Sections without an index are
// numbered by position. The first failing section aborts the batch.
func Calculate(in Input) (Result, error) {
	if n := len(in.Sections); n < MinSections || n > MaxSections {
		return Result{}, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidSectionCount, n, MinSections, MaxSections)
	}
	out := Result{Results: make([]hdd.Result, 0, len(in.Sections))}
	for i, item := range in.Sections {
		if item.Index == 0 {
			item.Index = i + 1
		}
		res, err := hdd.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("section %d: %w", item.Index, err)
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	return out, nil
}

// Rounded returns the display copy of every result.
func (r Result) Rounded() Result {
	rounded := make([]hdd.Result, len(r.Results))
	for i, res := range r.Results {
		rounded[i] = res.Rounded()
	}
	return Result{Count: r.Count, Results: rounded}
}
