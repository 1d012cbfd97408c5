// Package seeddata generates a synthetic employee population for demos,
// load tests and the default "seed" directory source.
package seeddata

import (
	"fmt"
	"math/rand"

	"github.com/okian/talentmatch/internal/domain/model"
)

// Default generation constants.
const (
	defaultSize = 500
	defaultSeed = 42
)

// Performance archetypes shape the numeric score distributions so the
// ranked output has visible spread.
const (
	caseElitePerformer = iota
	caseHighPerformer
	caseAveragePerformer
	caseLowPerformer
	archetypeCount
)

var (
	directorates = []string{"Commercial", "Operations", "Finance", "Technology", "Human Capital"}
	roles        = []string{"Sales", "Account Manager", "Analyst", "Engineer", "HR Generalist", "Product Manager"}
	grades       = []string{"II", "III", "IV", "V"}
	educations   = []string{"Bachelor", "Master", "Diploma"}
	majors       = []string{"Management", "Accounting", "Informatics", "Industrial Engineering", "Psychology", "Communication"}
	areas        = []string{"Head Office", "Region 1", "Region 2", "Region 3"}
	mbtiTypes    = []string{"ISTJ", "ESTJ", "INTJ", "ENTP", "ENFJ", "ISFJ", "INFP", "ESTP"}
	discTypes    = []string{"D", "I", "S", "C", "DI", "SC", "CD", "IS"}
	strengthPool = []string{
		"Achiever", "Analytical", "Arranger", "Communication", "Competition",
		"Deliberative", "Developer", "Discipline", "Empathy", "Focus",
		"Futuristic", "Harmony", "Ideation", "Learner", "Maximizer",
		"Relator", "Responsibility", "Strategic",
	}

	firstNames = []string{"Adi", "Budi", "Citra", "Dewi", "Eka", "Fajar", "Gita", "Hana", "Indra", "Joko", "Kartika", "Lukman", "Maya", "Nanda", "Putri", "Rizky", "Sari", "Tono", "Utami", "Wawan"}
	lastNames  = []string{"Pratama", "Santoso", "Wijaya", "Lestari", "Nugroho", "Saputra", "Rahmawati", "Hidayat", "Permata", "Utomo"}
)

// Generator produces deterministic synthetic populations.
type Generator struct {
	size int
	rng  *rand.Rand
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSize sets the population size.
func WithSize(size int) Option {
	return func(g *Generator) {
		if size > 0 {
			g.size = size
		}
	}
}

// WithSeed seeds the random source, making generation reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible populations
	}
}

// New constructs a Generator with defaults.
func New(opts ...Option) *Generator {
	g := &Generator{
		size: defaultSize,
		rng:  rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic seed for reproducible populations
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the population. Employee ids are sequential so benchmark
// picks are easy to reproduce across runs.
func (g *Generator) Generate() []model.Employee {
	employees := make([]model.Employee, g.size)
	for i := range employees {
		employees[i] = g.employee(i + 1)
	}
	return employees
}

func (g *Generator) employee(seq int) model.Employee {
	archetype := g.rng.Intn(archetypeCount)
	e := model.Employee{
		EmployeeID:  fmt.Sprintf("EMP-%04d", seq),
		FullName:    pick(g.rng, firstNames) + " " + pick(g.rng, lastNames),
		Directorate: pick(g.rng, directorates),
		Role:        pick(g.rng, roles),
		Grade:       pick(g.rng, grades),
	}

	e.Education = ptr(pick(g.rng, educations))
	e.Major = ptr(pick(g.rng, majors))
	e.Area = ptr(pick(g.rng, areas))
	e.YearsOfService = fptr(float64(g.rng.Intn(240) + 6))

	e.IQ = g.score(archetype, 90, 40)
	e.GTQ = g.score(archetype, 80, 50)
	e.TIKI = g.score(archetype, 85, 45)
	e.Pauli = g.score(archetype, 75, 50)
	e.CFIT = g.score(archetype, 88, 42)

	e.PapiG = g.score(archetype, 4, 5)
	e.PapiA = g.score(archetype, 4, 5)
	// Inverted scales: better performers trend lower.
	e.PapiT = g.invertedScore(archetype, 2, 6)
	e.PapiZ = g.invertedScore(archetype, 2, 6)
	e.PapiK = g.invertedScore(archetype, 1, 7)

	e.MBTI = ptr(pick(g.rng, mbtiTypes))
	e.DISC = ptr(pick(g.rng, discTypes))

	for i, s := range g.strengths() {
		e.Strengths[i] = ptr(s)
	}

	e.SEA = g.score(archetype, 60, 45)
	e.CustomerFocus = g.score(archetype, 60, 45)
	e.Integrity = g.score(archetype, 65, 40)
	e.DriveResult = g.score(archetype, 60, 45)
	e.ProblemSolving = g.score(archetype, 58, 47)
	e.Collaboration = g.score(archetype, 62, 43)
	e.DevelopingOthers = g.score(archetype, 55, 48)
	e.Adaptability = g.score(archetype, 57, 46)

	// A sliver of the population has gaps, exercising the missing-value
	// paths downstream.
	if g.rng.Intn(20) == 0 {
		e.Pauli = nil
		e.Strengths[4] = nil
	}
	return e
}

// score draws a value from base..base+spread, shifted down per archetype.
func (g *Generator) score(archetype int, base, spread float64) *float64 {
	penalty := float64(archetype) * spread / float64(archetypeCount)
	v := base - penalty + g.rng.Float64()*spread/2
	return fptr(v)
}

// invertedScore draws low values for strong archetypes and high for weak.
func (g *Generator) invertedScore(archetype int, base, spread float64) *float64 {
	bonus := float64(archetype) * spread / float64(archetypeCount)
	v := base + bonus + g.rng.Float64()*spread/2
	return fptr(v)
}

// strengths picks five distinct ranked labels.
func (g *Generator) strengths() []string {
	idx := g.rng.Perm(len(strengthPool))[:5]
	out := make([]string, 5)
	for i, j := range idx {
		out[i] = strengthPool[j]
	}
	return out
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func ptr(s string) *string { return &s }

func fptr(f float64) *float64 { return &f }
