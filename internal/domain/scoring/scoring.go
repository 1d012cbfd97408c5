// Package scoring computes per-attribute match scores against a baseline.
package scoring

import (
	"math"

	"github.com/okian/talentmatch/internal/domain/catalog"
	"github.com/okian/talentmatch/internal/domain/model"
)

// Score bounds.
const (
	minScore = 0.0
	maxScore = 100.0
)

// Score computes the 0-100 match score of a user value against a baseline
// value for one attribute. The second return reports whether the attribute
// produced a defined score: categorical attributes always do (nulls score
// 0), numeric attributes are undefined when the user value is missing or
// the baseline is missing or zero. Undefined attributes must be excluded
// from the weighted sums entirely, not treated as zero.
func Score(def catalog.AttributeDefinition, baseline, user model.Value) (float64, bool) {
	if def.Kind == catalog.Categorical {
		return scoreCategorical(baseline, user), true
	}
	return scoreNumeric(def, baseline, user)
}

// scoreCategorical is exact, case-sensitive string equality: 100 or 0. A
// null on either side is a non-match, never an automatic 100.
func scoreCategorical(baseline, user model.Value) float64 {
	if !baseline.Present || !user.Present {
		return minScore
	}
	if user.Str == baseline.Str {
		return maxScore
	}
	return minScore
}

func scoreNumeric(def catalog.AttributeDefinition, baseline, user model.Value) (float64, bool) {
	// A zero baseline makes the ratio undefined; downstream aggregation
	// treats the attribute as absent rather than zero.
	if !user.Present || !baseline.Present || baseline.Num == 0 {
		return 0, false
	}
	var raw float64
	if def.Inverted {
		// Peak 100 at user == baseline, falling to 0 at 2x baseline; values
		// below baseline exceed 100 before clamping.
		raw = (2*baseline.Num - user.Num) / baseline.Num * maxScore
	} else {
		raw = user.Num / baseline.Num * maxScore
	}
	return clamp(raw), true
}

func clamp(v float64) float64 {
	return math.Max(minScore, math.Min(maxScore, v))
}
