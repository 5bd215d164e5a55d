package config

import (
	"fmt"

	"github.com/aiready/aiready/internal/model"
	"github.com/aiready/aiready/internal/recommend"
	"github.com/aiready/aiready/internal/score"
)

// PageTypeOverride tunes recommendation generation for one page type.
type PageTypeOverride struct {
	// Priority ranks the metrics to boost for this page type, highest
	// first. Replaces the built-in priority list when set.
	Priority []string `yaml:"priority,omitempty"`

	// Skip lists metrics never recommended for this page type.
	// Replaces the built-in skip list when set.
	Skip []string `yaml:"skip,omitempty"`
}

// File represents the structure of the .aiready configuration file.
type File struct {
	// Profiles maps page type names to per-pillar weight profiles.
	// The special key "default" backs page types without a profile.
	// Each profile must cover all five pillars and sum to 100.
	Profiles map[string]map[string]float64 `yaml:"profiles,omitempty"`

	// PageTypes maps page type names to recommendation tuning overrides.
	PageTypes map[string]PageTypeOverride `yaml:"pageTypes,omitempty"`
}

// knownPageTypes is the set of page type names accepted in config files.
var knownPageTypes = map[string]model.PageType{
	"homepage":      model.PageTypeHomepage,
	"article":       model.PageTypeArticle,
	"blog":          model.PageTypeBlog,
	"product":       model.PageTypeProduct,
	"category":      model.PageTypeCategory,
	"documentation": model.PageTypeDocumentation,
	"about":         model.PageTypeAbout,
	"contact":       model.PageTypeContact,
	"search":        model.PageTypeSearch,
	"general":       model.PageTypeGeneral,
	"default":       score.DefaultProfileKey,
}

// knownPillars is the set of pillar names accepted in weight profiles.
var knownPillars = map[string]model.Pillar{
	"RETRIEVAL":    model.PillarRetrieval,
	"FACT_DENSITY": model.PillarFactDensity,
	"STRUCTURE":    model.PillarStructure,
	"TRUST":        model.PillarTrust,
	"RECENCY":      model.PillarRecency,
}

// ProfileSet builds the effective scoring profiles: the built-in set with
// the file's profiles layered on top. Every overridden profile is
// validated; a profile that does not sum to 100 rejects the whole file
// rather than silently changing the scoring scale.
func (cf *File) ProfileSet() (score.ProfileSet, error) {
	profiles := score.DefaultProfiles()
	for name, entries := range cf.Profiles {
		pageType, ok := knownPageTypes[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPageType, name)
		}

		weights := make(score.Weights, len(entries))
		for pillarName, weight := range entries {
			pillar, ok := knownPillars[pillarName]
			if !ok {
				return nil, fmt.Errorf("%w: %q in profile %q", ErrUnknownPillar, pillarName, name)
			}
			weights[pillar] = weight
		}

		if err := score.ValidateWeights(weights); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		profiles[pageType] = weights
	}
	return profiles, nil
}

// Tuning builds the recommendation tuning overrides from the file.
func (cf *File) Tuning() (map[model.PageType]recommend.Tuning, error) {
	if len(cf.PageTypes) == 0 {
		return nil, nil
	}

	tuning := make(map[model.PageType]recommend.Tuning, len(cf.PageTypes))
	for name, override := range cf.PageTypes {
		pageType, ok := knownPageTypes[name]
		if !ok || name == "default" {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPageType, name)
		}
		tuning[pageType] = recommend.Tuning{
			Priority: override.Priority,
			Skip:     override.Skip,
		}
	}
	return tuning, nil
}
