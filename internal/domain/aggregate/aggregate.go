// Package aggregate folds per-attribute match scores into one weighted
// composite score per employee plus five group-level normalized ratios.
package aggregate

import (
	"math"

	"github.com/okian/talentmatch/internal/domain/baseline"
	"github.com/okian/talentmatch/internal/domain/catalog"
	"github.com/okian/talentmatch/internal/domain/model"
	"github.com/okian/talentmatch/internal/domain/scoring"
)

// AttributeScore is one scored (employee, attribute) pair before ranking.
type AttributeScore struct {
	Name     string
	Group    model.Group
	Baseline model.Value
	User     model.Value
	Score    float64
	// Defined is false when the attribute produced no score (missing user
	// value or degenerate baseline on a numeric attribute). Undefined
	// attributes contribute nothing to the weighted sums and emit no row.
	Defined bool
}

// Candidate is one fully aggregated employee, ready for ranking.
type Candidate struct {
	Employee    model.Employee
	IsBenchmark bool
	// FinalRate and GroupRates are rounded to 2 decimals for presentation;
	// attribute scores stay unrounded.
	FinalRate  float64
	GroupRates map[model.Group]float64
	Attributes []AttributeScore
}

// Evaluate scores one employee against the baseline vector across the whole
// catalog and aggregates the weighted results.
func Evaluate(e model.Employee, vec baseline.Vector, isBenchmark bool) Candidate {
	attrs := make([]AttributeScore, 0, catalog.Size())
	groupSums := make(map[model.Group]float64, len(catalog.Groups()))
	var final float64

	for _, def := range catalog.Definitions() {
		base := vec[def.Name]
		user := def.Extract(e)
		score, defined := scoring.Score(def, base, user)
		attrs = append(attrs, AttributeScore{
			Name:     def.Name,
			Group:    def.Group,
			Baseline: base,
			User:     user,
			Score:    score,
			Defined:  defined,
		})
		if !defined {
			continue
		}
		weighted := score * def.Weight
		groupSums[def.Group] += weighted
		final += weighted
	}

	rates := make(map[model.Group]float64, len(catalog.Groups()))
	for _, g := range catalog.Groups() {
		rates[g] = round2(groupSums[g] / catalog.Denominator(g))
	}

	return Candidate{
		Employee:    e,
		IsBenchmark: isBenchmark,
		FinalRate:   round2(final),
		GroupRates:  rates,
		Attributes:  attrs,
	}
}

// TopGroup returns the group with the highest rate, ties broken by canonical
// group order.
func (c Candidate) TopGroup() model.Group {
	top := catalog.Groups()[0]
	for _, g := range catalog.Groups()[1:] {
		if c.GroupRates[g] > c.GroupRates[top] {
			top = g
		}
	}
	return top
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
