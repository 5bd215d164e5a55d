package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/aiready/aiready/internal/model"
)

// DefaultProfileKey selects the profile applied when a page type has no
// profile of its own.
const DefaultProfileKey model.PageType = "default"

// profileTotal is the required sum of every weight profile. Profiles that
// do not sum to 100 would silently break the 0-100 total contract, so they
// are rejected on load rather than applied.
const profileTotal = 100

// profileSumTolerance absorbs float noise when validating profile sums.
const profileSumTolerance = 1e-6

// ErrInvalidProfile is returned for a weight profile that does not cover
// all five pillars or does not sum to 100.
var ErrInvalidProfile = errors.New("invalid weight profile")

// Weights is a per-pillar weight profile. A valid profile assigns a
// non-negative weight to every pillar and sums to 100.
type Weights map[model.Pillar]float64

// ProfileSet maps page types to weight profiles. The DefaultProfileKey
// entry backs every page type without an entry of its own.
type ProfileSet map[model.PageType]Weights

// defaultProfiles is the built-in profile set.
//
// Design decision: Every profile sums to 100. The scorer's output contract
// is a 0-100 total, and letting a profile change the scale would make
// scores incomparable across page types. Profiles redistribute the budget,
// never resize it.
var defaultProfiles = ProfileSet{
	DefaultProfileKey: {
		model.PillarRetrieval:   30,
		model.PillarFactDensity: 25,
		model.PillarStructure:   20,
		model.PillarTrust:       15,
		model.PillarRecency:     10,
	},
	model.PageTypeHomepage: {
		model.PillarRetrieval:   30,
		model.PillarFactDensity: 15,
		model.PillarStructure:   25,
		model.PillarTrust:       20,
		model.PillarRecency:     10,
	},
	model.PageTypeArticle: {
		model.PillarRetrieval:   25,
		model.PillarFactDensity: 30,
		model.PillarStructure:   20,
		model.PillarTrust:       15,
		model.PillarRecency:     10,
	},
	model.PageTypeBlog: {
		model.PillarRetrieval:   25,
		model.PillarFactDensity: 25,
		model.PillarStructure:   20,
		model.PillarTrust:       15,
		model.PillarRecency:     15,
	},
	model.PageTypeProduct: {
		model.PillarRetrieval:   30,
		model.PillarFactDensity: 25,
		model.PillarStructure:   25,
		model.PillarTrust:       10,
		model.PillarRecency:     10,
	},
	model.PageTypeCategory: {
		model.PillarRetrieval:   30,
		model.PillarFactDensity: 20,
		model.PillarStructure:   25,
		model.PillarTrust:       15,
		model.PillarRecency:     10,
	},
	model.PageTypeDocumentation: {
		model.PillarRetrieval:   25,
		model.PillarFactDensity: 20,
		model.PillarStructure:   30,
		model.PillarTrust:       15,
		model.PillarRecency:     10,
	},
	model.PageTypeAbout: {
		model.PillarRetrieval:   25,
		model.PillarFactDensity: 15,
		model.PillarStructure:   20,
		model.PillarTrust:       30,
		model.PillarRecency:     10,
	},
	model.PageTypeContact: {
		model.PillarRetrieval:   30,
		model.PillarFactDensity: 10,
		model.PillarStructure:   20,
		model.PillarTrust:       30,
		model.PillarRecency:     10,
	},
	model.PageTypeSearch: {
		model.PillarRetrieval:   35,
		model.PillarFactDensity: 15,
		model.PillarStructure:   25,
		model.PillarTrust:       15,
		model.PillarRecency:     10,
	},
}

// DefaultProfiles returns a deep copy of the built-in profile set.
func DefaultProfiles() ProfileSet {
	out := make(ProfileSet, len(defaultProfiles))
	for pageType, weights := range defaultProfiles {
		out[pageType] = cloneWeights(weights)
	}
	return out
}

// ValidateWeights checks that a profile covers all five pillars with
// non-negative weights summing to 100.
func ValidateWeights(w Weights) error {
	sum := 0.0
	for _, pillar := range model.Pillars() {
		weight, ok := w[pillar]
		if !ok {
			return fmt.Errorf("%w: missing pillar %s", ErrInvalidProfile, pillar)
		}
		if weight < 0 {
			return fmt.Errorf("%w: negative weight for pillar %s", ErrInvalidProfile, pillar)
		}
		sum += weight
	}
	if math.Abs(sum-profileTotal) > profileSumTolerance {
		return fmt.Errorf("%w: weights sum to %g, expected %d", ErrInvalidProfile, sum, profileTotal)
	}
	return nil
}

// Validate checks every profile in the set.
func (ps ProfileSet) Validate() error {
	for pageType, weights := range ps {
		if err := ValidateWeights(weights); err != nil {
			return fmt.Errorf("profile %q: %w", pageType, err)
		}
	}
	return nil
}

// resolve returns the profile for a page type, falling back to the default
// profile. The second return is false when neither exists.
func (ps ProfileSet) resolve(pageType model.PageType) (Weights, bool) {
	if weights, ok := ps[pageType]; ok {
		return weights, true
	}
	weights, ok := ps[DefaultProfileKey]
	return weights, ok
}

func cloneWeights(w Weights) Weights {
	out := make(Weights, len(w))
	for pillar, weight := range w {
		out[pillar] = weight
	}
	return out
}
