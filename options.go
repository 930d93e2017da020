package outliner

import "github.com/tsawler/outliner/layout"

// Options holds configuration for one pipeline run.
type Options struct {
	// maxPages limits how many pages are processed; 0 means all.
	maxPages int

	// skipEntities disables entity and key phrase extraction.
	skipEntities bool

	// Component configurations.
	scorer     layout.ScorerConfig
	classifier layout.ClassifierConfig
	reducer    layout.ReducerConfig
	title      layout.TitleConfig
}

// defaultOptions returns the default pipeline options.
func defaultOptions() Options {
	return Options{
		maxPages:     0,
		skipEntities: false,
		scorer:       layout.DefaultScorerConfig(),
		classifier:   layout.DefaultClassifierConfig(),
		reducer:      layout.DefaultReducerConfig(),
		title:        layout.DefaultTitleConfig(),
	}
}

// NewOptions returns the default options for callers who want to adjust
// component configuration before WithOptions.
func NewOptions() Options {
	return defaultOptions()
}

// SetScorerConfig replaces the emphasis scorer configuration.
func (o *Options) SetScorerConfig(cfg layout.ScorerConfig) {
	o.scorer = cfg
}

// SetClassifierConfig replaces the heading classifier configuration.
func (o *Options) SetClassifierConfig(cfg layout.ClassifierConfig) {
	o.classifier = cfg
}

// SetReducerConfig replaces the outline reducer configuration.
func (o *Options) SetReducerConfig(cfg layout.ReducerConfig) {
	o.reducer = cfg
}

// SetTitleConfig replaces the title selector configuration.
func (o *Options) SetTitleConfig(cfg layout.TitleConfig) {
	o.title = cfg
}
