// Package baseline reduces the benchmark employee subset into one composite
// profile: numeric attributes average across the subset, categorical
// attributes pick a single representative value via a selection policy.
package baseline

import (
	"sort"

	"github.com/okian/talentmatch/internal/domain/catalog"
	"github.com/okian/talentmatch/internal/domain/model"
)

// Policy selects one representative value from the non-null categorical
// values of the benchmark subset.
type Policy string

// Available selection policies.
const (
	// PolicyLexicographic picks the smallest string. This reproduces the
	// original behavior, which used min() as a stand-in for "most common
	// value"; it is an approximation, not a majority vote.
	PolicyLexicographic Policy = "lexicographic"
	// PolicyMode picks the most frequent value, ties broken lexicographically.
	PolicyMode Policy = "mode"
	// PolicyFirstEncountered picks the first non-null value in benchmark order.
	PolicyFirstEncountered Policy = "first"
)

// ParsePolicy maps a config string onto a Policy, defaulting to
// PolicyLexicographic for unknown input.
func ParsePolicy(s string) Policy {
	switch Policy(s) {
	case PolicyMode:
		return PolicyMode
	case PolicyFirstEncountered:
		return PolicyFirstEncountered
	default:
		return PolicyLexicographic
	}
}

// Vector holds one baseline value per attribute name. Entries for attributes
// where every benchmark value was null are absent values.
type Vector map[string]model.Value

// Builder derives baseline vectors from benchmark subsets.
type Builder struct {
	policy Policy
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithPolicy sets the categorical selection policy.
func WithPolicy(p Policy) Option {
	return func(b *Builder) {
		if p != "" {
			b.policy = p
		}
	}
}

// New constructs a Builder. The default categorical policy is
// PolicyLexicographic.
func New(opts ...Option) *Builder {
	b := &Builder{policy: PolicyLexicographic}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Policy returns the configured categorical selection policy.
func (b *Builder) Policy() Policy {
	return b.policy
}

// Build derives one baseline value per catalog attribute from the benchmark
// subset. The caller guarantees benchmarks is non-empty; unknown ids are
// rejected before this point.
func (b *Builder) Build(benchmarks []model.Employee) Vector {
	v := make(Vector, catalog.Size())
	for _, def := range catalog.Definitions() {
		values := make([]model.Value, 0, len(benchmarks))
		for _, e := range benchmarks {
			if val := def.Extract(e); val.Present {
				values = append(values, val)
			}
		}
		switch def.Kind {
		case catalog.Numeric:
			v[def.Name] = meanOf(values)
		case catalog.Categorical:
			v[def.Name] = b.selectCategorical(values)
		}
	}
	return v
}

// meanOf averages present numeric values; no values means an absent baseline.
func meanOf(values []model.Value) model.Value {
	if len(values) == 0 {
		return model.Value{Kind: model.KindNumeric}
	}
	var sum float64
	for _, v := range values {
		sum += v.Num
	}
	return model.Num(sum / float64(len(values)))
}

func (b *Builder) selectCategorical(values []model.Value) model.Value {
	if len(values) == 0 {
		return model.Value{Kind: model.KindCategorical}
	}
	switch b.policy {
	case PolicyFirstEncountered:
		return values[0]
	case PolicyMode:
		return modeOf(values)
	default:
		out := values[0].Str
		for _, v := range values[1:] {
			if v.Str < out {
				out = v.Str
			}
		}
		return model.Str(out)
	}
}

// modeOf returns the most frequent value, ties broken lexicographically so
// the result is deterministic regardless of benchmark order.
func modeOf(values []model.Value) model.Value {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v.Str]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return model.Str(best)
}
