// process.go wires the pipeline stages together for one document.
package outliner

import (
	"strings"

	"github.com/tsawler/outliner/entities"
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/pages"
	"github.com/tsawler/outliner/text"
)

// summarize runs the full pipeline: normalize → merge → score → classify →
// reduce, plus title selection, metadata, and the auxiliary extractors.
// Data flows strictly forward; no stage re-reads upstream state.
func summarize(src pages.Source, options Options) *model.Summary {
	pageCount, err := src.PageCount()
	if err != nil || pageCount == 0 {
		return model.ErrorSummary()
	}
	if options.maxPages > 0 && pageCount > options.maxPages {
		pageCount = options.maxPages
	}

	normalizer := text.NewNormalizer()
	merger := text.NewFragmentMerger()

	// Each page is merged independently with its own accumulator, so a
	// fragment can never join lines across a page boundary.
	var logical []model.LogicalLine
	produced := false
	for page := 0; page < pageCount; page++ {
		raw, err := src.Lines(page)
		if err != nil {
			continue
		}
		produced = true
		logical = append(logical, merger.Merge(normalizer.NormalizeAll(raw), page)...)
	}
	if !produced {
		return model.ErrorSummary()
	}

	scorer := layout.NewScorerWithConfig(options.scorer)
	scored := scorer.ScoreAll(logical)

	selector := layout.NewTitleSelectorWithConfig(options.title)
	title := selector.SelectTitle(scored)

	classifier := layout.NewClassifierWithConfig(options.classifier)
	candidates := classifier.Classify(scored)

	reducer := layout.NewReducerWithConfig(options.reducer)
	outline := reducer.Reduce(candidates)

	summary := &model.Summary{
		Title:   title,
		Outline: outline,
		Metadata: &model.Metadata{
			TotalPages:         pageCount,
			EstimatedWordCount: wordCount(logical),
			Language:           detectLanguage(logical),
		},
	}

	if !options.skipEntities {
		full := joinLines(logical)
		summary.KeyPhrases = entities.KeyPhrases(full)
		summary.Fields = entities.NewExtractor().Extract(full)
	}

	return summary
}

// wordCount estimates the document word count as the number of
// whitespace-delimited tokens across all logical lines.
func wordCount(lines []model.LogicalLine) int {
	count := 0
	for _, line := range lines {
		count += len(strings.Fields(line.Text))
	}
	return count
}

// joinLines concatenates logical line text for the flat-text extractors.
func joinLines(lines []model.LogicalLine) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(line.Text)
	}
	return sb.String()
}

// languageSampleRunes bounds how much text language detection examines.
const languageSampleRunes = 4000

// detectLanguage identifies the dominant script: kana means Japanese,
// ideographs without kana mean Chinese, anything else reports English.
func detectLanguage(lines []model.LogicalLine) string {
	kana, han, total := 0, 0, 0
	for _, line := range lines {
		k, h, t := text.CountScripts(line.Text)
		kana += k
		han += h
		total += t
		if total >= languageSampleRunes {
			break
		}
	}
	if total == 0 {
		return "en"
	}

	cjkShare := float64(kana+han) / float64(total)
	switch {
	case kana > 0 && cjkShare > 0.05:
		return "ja"
	case cjkShare > 0.20:
		return "zh"
	default:
		return "en"
	}
}
