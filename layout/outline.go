package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

// ReducerConfig holds configuration for outline reduction.
type ReducerConfig struct {
	// MaxEntries bounds the outline length. Default: model.MaxOutlineEntries.
	MaxEntries int

	// HighConfidence is the cutoff applied when the candidate set exceeds
	// MaxEntries. Default: 0.7.
	HighConfidence float64

	// MinHighConfidence is the minimum number of high-confidence entries
	// required before the cutoff is applied instead of plain truncation.
	// Default: 10.
	MinHighConfidence int
}

// DefaultReducerConfig returns the default reduction configuration.
func DefaultReducerConfig() ReducerConfig {
	return ReducerConfig{
		MaxEntries:        model.MaxOutlineEntries,
		HighConfidence:    0.7,
		MinHighConfidence: 10,
	}
}

// Reducer deduplicates, orders, and bounds classified heading candidates
// into the final outline.
type Reducer struct {
	config ReducerConfig
}

// NewReducer creates a reducer with default configuration.
func NewReducer() *Reducer {
	return &Reducer{config: DefaultReducerConfig()}
}

// NewReducerWithConfig creates a reducer with custom configuration.
func NewReducerWithConfig(config ReducerConfig) *Reducer {
	return &Reducer{config: config}
}

type dedupeKey struct {
	title string
	page  int
}

// Reduce produces the final outline: candidates are deduplicated by
// (lowercased title, page) keeping the higher-confidence entry, sorted by
// page ascending then confidence descending, bounded to MaxEntries, and
// projected down to title/level/page. The returned slice is never nil.
func (r *Reducer) Reduce(candidates []model.HeadingCandidate) []model.OutlineEntry {
	best := make(map[dedupeKey]model.HeadingCandidate, len(candidates))
	order := make([]dedupeKey, 0, len(candidates))

	for _, cand := range candidates {
		key := dedupeKey{title: strings.ToLower(cand.Title), page: cand.Page}
		existing, ok := best[key]
		if !ok {
			best[key] = cand
			order = append(order, key)
			continue
		}
		// Replace the whole entry at once so no partial state is visible.
		if cand.Confidence > existing.Confidence {
			best[key] = cand
		}
	}

	survivors := make([]model.HeadingCandidate, 0, len(order))
	for _, key := range order {
		survivors = append(survivors, best[key])
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].Page != survivors[j].Page {
			return survivors[i].Page < survivors[j].Page
		}
		return survivors[i].Confidence > survivors[j].Confidence
	})

	if len(survivors) > r.config.MaxEntries {
		high := make([]model.HeadingCandidate, 0, len(survivors))
		for _, cand := range survivors {
			if cand.Confidence > r.config.HighConfidence {
				high = append(high, cand)
			}
		}
		if len(high) >= r.config.MinHighConfidence {
			survivors = high
		}
		if len(survivors) > r.config.MaxEntries {
			survivors = survivors[:r.config.MaxEntries]
		}
	}

	outline := make([]model.OutlineEntry, 0, len(survivors))
	for _, cand := range survivors {
		outline = append(outline, model.OutlineEntry{
			Title: cand.Title,
			Level: cand.Level,
			Page:  cand.Page,
		})
	}
	return outline
}
