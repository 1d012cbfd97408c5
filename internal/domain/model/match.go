package model

// Group is one of the five attribute categories (TGV).
type Group string

// The five groups, named as in the original result set.
const (
	GroupCompetency  Group = "Competency"
	GroupCognitive   Group = "Psychometric (Cognitive)"
	GroupPersonality Group = "Psychometric (Personality)"
	GroupStrengths   Group = "Behavioral (Strengths)"
	GroupContextual  Group = "Contextual (Background)"
)

// MatchRow is one (employee, attribute) result pair. GroupRate repeats for
// every row sharing (employee, group) and FinalRate for every row sharing
// employee, so consumers can pivot without re-joining.
type MatchRow struct {
	EmployeeID     string  `json:"employee_id"`
	Group          Group   `json:"tgv_name"`
	Attribute      string  `json:"tv_name"`
	BaselineValue  Value   `json:"baseline_value"`
	UserValue      Value   `json:"user_value"`
	AttributeScore float64 `json:"tv_match_score"`
	GroupRate      float64 `json:"tgv_match_rate"`
	FinalRate      float64 `json:"final_match_rate"`
	IsBenchmark    bool    `json:"is_benchmark"`
}

// Summary is the one-row-per-employee projection used by ranked tables.
type Summary struct {
	Rank        int               `json:"rank"`
	EmployeeID  string            `json:"employee_id"`
	FullName    string            `json:"fullname"`
	Role        string            `json:"role"`
	Grade       string            `json:"grade"`
	Directorate string            `json:"directorate"`
	FinalRate   float64           `json:"final_match_rate"`
	TopGroup    Group             `json:"top_tgv"`
	GroupRates  map[Group]float64 `json:"tgv_match_rates"`
	IsBenchmark bool              `json:"is_benchmark"`
}

// MatchResult is the full output of one scoring invocation: the ranked row
// stream plus its per-employee projection, in the same order.
type MatchResult struct {
	SnapshotVersion string     `json:"snapshot_version"`
	BenchmarkIDs    []string   `json:"benchmark_ids"`
	Rows            []MatchRow `json:"rows"`
	Summaries       []Summary  `json:"summaries"`
}
