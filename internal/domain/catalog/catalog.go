// Package catalog is the static registry of every scorable attribute: its
// group, value kind, weight, inversion flag and an extractor over the
// employee record. The registry is a process-wide constant; the score
// calculator and aggregator iterate it generically instead of enumerating
// attributes by hand.
package catalog

import (
	"github.com/okian/talentmatch/internal/domain/model"
)

// Kind discriminates how an attribute is scored.
type Kind int

const (
	// Numeric attributes score as a ratio against the baseline.
	Numeric Kind = iota
	// Categorical attributes score 100 on exact equality, else 0.
	Categorical
)

// Per-attribute weights. These mirror the production weighting sheet
// verbatim, including its quirks: the declared weights sum to roughly 1.05,
// and the Competency normalization denominator is 0.675 even though the
// group's declared weights sum to 0.600. Do not rebalance without a product
// decision.
const (
	competencyWeight  = 0.075
	cognitiveWeight   = 0.01
	personalityWeight = 0.00714
	strengthWeight    = 0.016
	contextualWeight  = 0.054
)

// Group normalization denominators.
const (
	competencyDenominator  = 0.675
	cognitiveDenominator   = 0.05
	personalityDenominator = 0.05
	strengthsDenominator   = 0.08
	contextualDenominator  = 0.27
)

// Extractor pulls one attribute value out of an employee record.
type Extractor func(model.Employee) model.Value

// AttributeDefinition describes one scorable attribute.
type AttributeDefinition struct {
	Name     string
	Group    model.Group
	Kind     Kind
	Weight   float64
	Inverted bool
	Extract  Extractor
}

func num(get func(model.Employee) *float64) Extractor {
	return func(e model.Employee) model.Value { return model.NumPtr(get(e)) }
}

func str(get func(model.Employee) *string) Extractor {
	return func(e model.Employee) model.Value { return model.StrPtr(get(e)) }
}

func strength(rank int) Extractor {
	return func(e model.Employee) model.Value { return model.StrPtr(e.Strengths[rank-1]) }
}

// definitions is the full catalog in canonical output order: grouped by
// category, attributes in declaration order within each group.
var definitions = []AttributeDefinition{
	// Competency: eight pillar averages.
	{Name: "sea", Group: model.GroupCompetency, Kind: Numeric, Weight: competencyWeight,
		Extract: num(func(e model.Employee) *float64 { return e.SEA })},
	{Name: "customer_focus", Group: model.GroupCompetency, Kind: Numeric, Weight: competencyWeight,
		Extract: num(func(e model.Employee) *float64 { return e.CustomerFocus })},
	{Name: "integrity", Group: model.GroupCompetency, Kind: Numeric, Weight: competencyWeight,
		Extract: num(func(e model.Employee) *float64 { return e.Integrity })},
	{Name: "drive_result", Group: model.GroupCompetency, Kind: Numeric, Weight: competencyWeight,
		Extract: num(func(e model.Employee) *float64 { return e.DriveResult })},
	{Name: "problem_solving", Group: model.GroupCompetency, Kind: Numeric, Weight: competencyWeight,
		Extract: num(func(e model.Employee) *float64 { return e.ProblemSolving })},
	{Name: "collaboration", Group: model.GroupCompetency, Kind: Numeric, Weight: competencyWeight,
		Extract: num(func(e model.Employee) *float64 { return e.Collaboration })},
	{Name: "developing_others", Group: model.GroupCompetency, Kind: Numeric, Weight: competencyWeight,
		Extract: num(func(e model.Employee) *float64 { return e.DevelopingOthers })},
	{Name: "adaptability", Group: model.GroupCompetency, Kind: Numeric, Weight: competencyWeight,
		Extract: num(func(e model.Employee) *float64 { return e.Adaptability })},

	// Psychometric (Cognitive): five independent test scores.
	{Name: "iq", Group: model.GroupCognitive, Kind: Numeric, Weight: cognitiveWeight,
		Extract: num(func(e model.Employee) *float64 { return e.IQ })},
	{Name: "gtq", Group: model.GroupCognitive, Kind: Numeric, Weight: cognitiveWeight,
		Extract: num(func(e model.Employee) *float64 { return e.GTQ })},
	{Name: "tiki", Group: model.GroupCognitive, Kind: Numeric, Weight: cognitiveWeight,
		Extract: num(func(e model.Employee) *float64 { return e.TIKI })},
	{Name: "pauli", Group: model.GroupCognitive, Kind: Numeric, Weight: cognitiveWeight,
		Extract: num(func(e model.Employee) *float64 { return e.Pauli })},
	{Name: "cfit", Group: model.GroupCognitive, Kind: Numeric, Weight: cognitiveWeight,
		Extract: num(func(e model.Employee) *float64 { return e.CFIT })},

	// Psychometric (Personality): two type codes and five PAPI scales.
	{Name: "mbti", Group: model.GroupPersonality, Kind: Categorical, Weight: personalityWeight,
		Extract: str(func(e model.Employee) *string { return e.MBTI })},
	{Name: "disc", Group: model.GroupPersonality, Kind: Categorical, Weight: personalityWeight,
		Extract: str(func(e model.Employee) *string { return e.DISC })},
	{Name: "papi_g", Group: model.GroupPersonality, Kind: Numeric, Weight: personalityWeight,
		Extract: num(func(e model.Employee) *float64 { return e.PapiG })},
	{Name: "papi_a", Group: model.GroupPersonality, Kind: Numeric, Weight: personalityWeight,
		Extract: num(func(e model.Employee) *float64 { return e.PapiA })},
	{Name: "papi_t", Group: model.GroupPersonality, Kind: Numeric, Weight: personalityWeight, Inverted: true,
		Extract: num(func(e model.Employee) *float64 { return e.PapiT })},
	{Name: "papi_z", Group: model.GroupPersonality, Kind: Numeric, Weight: personalityWeight, Inverted: true,
		Extract: num(func(e model.Employee) *float64 { return e.PapiZ })},
	{Name: "papi_k", Group: model.GroupPersonality, Kind: Numeric, Weight: personalityWeight, Inverted: true,
		Extract: num(func(e model.Employee) *float64 { return e.PapiK })},

	// Behavioral (Strengths): five ranked labels.
	{Name: "strength_1", Group: model.GroupStrengths, Kind: Categorical, Weight: strengthWeight, Extract: strength(1)},
	{Name: "strength_2", Group: model.GroupStrengths, Kind: Categorical, Weight: strengthWeight, Extract: strength(2)},
	{Name: "strength_3", Group: model.GroupStrengths, Kind: Categorical, Weight: strengthWeight, Extract: strength(3)},
	{Name: "strength_4", Group: model.GroupStrengths, Kind: Categorical, Weight: strengthWeight, Extract: strength(4)},
	{Name: "strength_5", Group: model.GroupStrengths, Kind: Categorical, Weight: strengthWeight, Extract: strength(5)},

	// Contextual (Background).
	{Name: "education", Group: model.GroupContextual, Kind: Categorical, Weight: contextualWeight,
		Extract: str(func(e model.Employee) *string { return e.Education })},
	{Name: "major", Group: model.GroupContextual, Kind: Categorical, Weight: contextualWeight,
		Extract: str(func(e model.Employee) *string { return e.Major })},
	{Name: "position", Group: model.GroupContextual, Kind: Categorical, Weight: contextualWeight,
		Extract: func(e model.Employee) model.Value {
			if e.Role == "" {
				return model.Value{Kind: model.KindCategorical}
			}
			return model.Str(e.Role)
		}},
	{Name: "area", Group: model.GroupContextual, Kind: Categorical, Weight: contextualWeight,
		Extract: str(func(e model.Employee) *string { return e.Area })},
	{Name: "years_of_service", Group: model.GroupContextual, Kind: Numeric, Weight: contextualWeight,
		Extract: num(func(e model.Employee) *float64 { return e.YearsOfService })},
}

// byName indexes definitions for Lookup.
var byName = func() map[string]AttributeDefinition {
	m := make(map[string]AttributeDefinition, len(definitions))
	for _, d := range definitions {
		m[d.Name] = d
	}
	return m
}()

// denominators maps each group to its fixed normalization constant.
var denominators = map[model.Group]float64{
	model.GroupCompetency:  competencyDenominator,
	model.GroupCognitive:   cognitiveDenominator,
	model.GroupPersonality: personalityDenominator,
	model.GroupStrengths:   strengthsDenominator,
	model.GroupContextual:  contextualDenominator,
}

// groupOrder is the canonical group ordering.
var groupOrder = []model.Group{
	model.GroupCompetency,
	model.GroupCognitive,
	model.GroupPersonality,
	model.GroupStrengths,
	model.GroupContextual,
}

// Definitions returns the catalog in canonical order. The returned slice is
// shared; callers must not mutate it.
func Definitions() []AttributeDefinition {
	return definitions
}

// Lookup returns the definition for an attribute name. Attributes missing
// from the catalog are excluded from scoring.
func Lookup(name string) (AttributeDefinition, bool) {
	d, ok := byName[name]
	return d, ok
}

// Groups returns the five groups in canonical order.
func Groups() []model.Group {
	return groupOrder
}

// Denominator returns the fixed normalization constant for a group.
func Denominator(g model.Group) float64 {
	return denominators[g]
}

// Size returns the number of catalog entries.
func Size() int {
	return len(definitions)
}
