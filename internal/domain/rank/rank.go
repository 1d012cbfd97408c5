// Package rank orders the scored population deterministically and projects
// it into the row stream and per-employee summaries.
package rank

import (
	"sort"

	"github.com/okian/talentmatch/internal/domain/aggregate"
	"github.com/okian/talentmatch/internal/domain/catalog"
	"github.com/okian/talentmatch/internal/domain/model"
)

// Order sorts candidates in place: benchmark members first, then final match
// rate descending, then employee id ascending as the deterministic
// tie-break. A single stateless sort per invocation.
func Order(candidates []aggregate.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.IsBenchmark != b.IsBenchmark {
			return a.IsBenchmark
		}
		if a.FinalRate != b.FinalRate {
			return a.FinalRate > b.FinalRate
		}
		return a.Employee.EmployeeID < b.Employee.EmployeeID
	})
}

// Rows flattens ordered candidates into the row stream: employees in rank
// order, attributes in catalog order within each employee. Undefined
// attribute scores emit no row, mirroring how null values fall out of the
// unpivoted join.
func Rows(candidates []aggregate.Candidate) []model.MatchRow {
	rows := make([]model.MatchRow, 0, len(candidates)*catalog.Size())
	for _, c := range candidates {
		for _, a := range c.Attributes {
			if !a.Defined {
				continue
			}
			rows = append(rows, model.MatchRow{
				EmployeeID:     c.Employee.EmployeeID,
				Group:          a.Group,
				Attribute:      a.Name,
				BaselineValue:  a.Baseline,
				UserValue:      a.User,
				AttributeScore: a.Score,
				GroupRate:      c.GroupRates[a.Group],
				FinalRate:      c.FinalRate,
				IsBenchmark:    c.IsBenchmark,
			})
		}
	}
	return rows
}

// Summaries builds the one-row-per-employee projection with 1-based ranks
// over the ordered candidates.
func Summaries(candidates []aggregate.Candidate) []model.Summary {
	out := make([]model.Summary, 0, len(candidates))
	for i, c := range candidates {
		rates := make(map[model.Group]float64, len(c.GroupRates))
		for g, r := range c.GroupRates {
			rates[g] = r
		}
		out = append(out, model.Summary{
			Rank:        i + 1,
			EmployeeID:  c.Employee.EmployeeID,
			FullName:    c.Employee.FullName,
			Role:        c.Employee.Role,
			Grade:       c.Employee.Grade,
			Directorate: c.Employee.Directorate,
			FinalRate:   c.FinalRate,
			TopGroup:    c.TopGroup(),
			GroupRates:  rates,
			IsBenchmark: c.IsBenchmark,
		})
	}
	return out
}
