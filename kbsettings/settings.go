package kbsettings

// PageRankSettings bundles the PageRank driver's tunables.
type PageRankSettings struct {
	// UseWeight selects weighted (out_coef = sum of out-edge weights) vs
	// unweighted (out_coef = out-degree) PageRank.
	UseWeight bool
	// NumIterations caps the power-iteration loop.
	NumIterations int
	// Threshold is the L1-delta convergence cutoff.
	Threshold float64
	// Damping is the damping factor d in (0,1).
	Damping float64
}

// Settings is the abstract configuration collaborator the engine consumes.
// It corresponds to spec.md §6's recognized option keys.
type Settings interface {
	// FilterSrc returns the allowed relation-source set and whether
	// source filtering is enabled at all (filter_src).
	FilterSrc() (allowed map[string]struct{}, enabled bool)
	// KeepDirected reports whether the `d:` field should be respected
	// (keep_directed); when false every relation is treated as
	// undirected regardless of `d:`.
	KeepDirected() bool
	// KeepRelTypes reports whether relation-type names from `t:` should
	// be recorded (keep_reltypes).
	KeepRelTypes() bool
	// RejectLegacyText reports whether text ingest should be refused
	// outright (v1_kb), directing callers at a conversion utility.
	RejectLegacyText() bool
	// PageRank returns the PageRank driver's tunables.
	PageRank() PageRankSettings
}

// DefaultSettings is a Settings implementation with the conventional
// defaults; construct it with NewDefaultSettings and zero or more
// SettingsOption overrides.
type DefaultSettings struct {
	filterSrc        map[string]struct{}
	filterSrcEnabled bool
	keepDirected     bool
	keepRelTypes     bool
	rejectLegacyText bool
	pageRank         PageRankSettings
}

// SettingsOption configures a DefaultSettings instance.
type SettingsOption func(*DefaultSettings)

// WithFilterSrc restricts ingest to the given relation-source names.
func WithFilterSrc(allowed map[string]struct{}) SettingsOption {
	return func(s *DefaultSettings) {
		s.filterSrc = allowed
		s.filterSrcEnabled = true
	}
}

// WithKeepDirected overrides whether the `d:` field is honored.
func WithKeepDirected(keep bool) SettingsOption {
	return func(s *DefaultSettings) { s.keepDirected = keep }
}

// WithKeepRelTypes overrides whether relation-type names are recorded.
func WithKeepRelTypes(keep bool) SettingsOption {
	return func(s *DefaultSettings) { s.keepRelTypes = keep }
}

// WithRejectLegacyText overrides the v1_kb legacy-text rejection flag.
func WithRejectLegacyText(reject bool) SettingsOption {
	return func(s *DefaultSettings) { s.rejectLegacyText = reject }
}

// WithPageRank overrides the PageRank tunables wholesale.
func WithPageRank(pr PageRankSettings) SettingsOption {
	return func(s *DefaultSettings) { s.pageRank = pr }
}

// NewDefaultSettings returns a Settings with conventional defaults:
// keep_directed=true, keep_reltypes=true, v1_kb=false, no source filter,
// and prank.{use_weight=true, num_iterations=30, threshold=1e-4, damping=0.85}.
func NewDefaultSettings(opts ...SettingsOption) *DefaultSettings {
	s := &DefaultSettings{
		keepDirected:     true,
		keepRelTypes:     true,
		rejectLegacyText: false,
		pageRank: PageRankSettings{
			UseWeight:     true,
			NumIterations: 30,
			Threshold:     0.0001,
			Damping:       0.85,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DefaultSettings) FilterSrc() (map[string]struct{}, bool) {
	return s.filterSrc, s.filterSrcEnabled
}
func (s *DefaultSettings) KeepDirected() bool     { return s.keepDirected }
func (s *DefaultSettings) KeepRelTypes() bool     { return s.keepRelTypes }
func (s *DefaultSettings) RejectLegacyText() bool { return s.rejectLegacyText }
func (s *DefaultSettings) PageRank() PageRankSettings { return s.pageRank }
