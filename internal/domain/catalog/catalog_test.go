package catalog_test

import (
	"testing"

	"github.com/okian/talentmatch/internal/domain/catalog"
	"github.com/okian/talentmatch/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalogShape(t *testing.T) {
	Convey("Given the attribute catalog", t, func() {
		defs := catalog.Definitions()

		Convey("Then it should contain thirty attributes", func() {
			So(catalog.Size(), ShouldEqual, 30)
			So(defs, ShouldHaveLength, 30)
		})

		Convey("Then groups should have the expected sizes", func() {
			counts := make(map[model.Group]int)
			for _, d := range defs {
				counts[d.Group]++
			}
			So(counts[model.GroupCompetency], ShouldEqual, 8)
			So(counts[model.GroupCognitive], ShouldEqual, 5)
			So(counts[model.GroupPersonality], ShouldEqual, 7)
			So(counts[model.GroupStrengths], ShouldEqual, 5)
			So(counts[model.GroupContextual], ShouldEqual, 5)
		})

		Convey("Then attribute names should be unique", func() {
			seen := make(map[string]bool)
			for _, d := range defs {
				So(seen[d.Name], ShouldBeFalse)
				seen[d.Name] = true
			}
		})

		Convey("Then the declared weights should keep their historical sums", func() {
			sums := make(map[model.Group]float64)
			var total float64
			for _, d := range defs {
				sums[d.Group] += d.Weight
				total += d.Weight
			}
			// The sheet's declared weights do not sum to 1 and the
			// Competency denominator deliberately disagrees with the
			// group's weight sum. Both stay as they are.
			So(total, ShouldAlmostEqual, 1.04998, 0.0001)
			So(sums[model.GroupCompetency], ShouldAlmostEqual, 0.600, 0.0001)
			So(catalog.Denominator(model.GroupCompetency), ShouldEqual, 0.675)
			So(sums[model.GroupCognitive], ShouldAlmostEqual, catalog.Denominator(model.GroupCognitive), 0.0001)
			So(sums[model.GroupStrengths], ShouldAlmostEqual, catalog.Denominator(model.GroupStrengths), 0.0001)
			So(sums[model.GroupContextual], ShouldAlmostEqual, catalog.Denominator(model.GroupContextual), 0.0001)
		})

		Convey("Then only the three pressure scales should be inverted", func() {
			inverted := make([]string, 0, 3)
			for _, d := range defs {
				if d.Inverted {
					inverted = append(inverted, d.Name)
				}
			}
			So(inverted, ShouldResemble, []string{"papi_t", "papi_z", "papi_k"})
		})

		Convey("Then canonical group order should be stable", func() {
			So(catalog.Groups(), ShouldResemble, []model.Group{
				model.GroupCompetency,
				model.GroupCognitive,
				model.GroupPersonality,
				model.GroupStrengths,
				model.GroupContextual,
			})
		})
	})
}

func TestCatalogLookup(t *testing.T) {
	Convey("Given the attribute catalog", t, func() {
		Convey("When looking up a known attribute", func() {
			d, ok := catalog.Lookup("papi_t")

			Convey("Then it should return the definition", func() {
				So(ok, ShouldBeTrue)
				So(d.Group, ShouldEqual, model.GroupPersonality)
				So(d.Inverted, ShouldBeTrue)
			})
		})

		Convey("When looking up an unknown attribute", func() {
			_, ok := catalog.Lookup("shoe_size")

			Convey("Then it should report absence", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestExtractors(t *testing.T) {
	Convey("Given an employee record", t, func() {
		iq := 110.0
		mbti := "INTJ"
		s1 := "Achiever"
		e := model.Employee{
			EmployeeID: "EMP-0001",
			Role:       "Sales",
			IQ:         &iq,
			MBTI:       &mbti,
			Strengths:  [5]*string{&s1, nil, nil, nil, nil},
		}

		Convey("When extracting a present numeric attribute", func() {
			d, _ := catalog.Lookup("iq")
			v := d.Extract(e)

			So(v.Present, ShouldBeTrue)
			So(v.Num, ShouldEqual, 110.0)
		})

		Convey("When extracting a missing numeric attribute", func() {
			d, _ := catalog.Lookup("pauli")
			v := d.Extract(e)

			So(v.Present, ShouldBeFalse)
		})

		Convey("When extracting strengths by rank", func() {
			d1, _ := catalog.Lookup("strength_1")
			d2, _ := catalog.Lookup("strength_2")

			So(d1.Extract(e).Str, ShouldEqual, "Achiever")
			So(d2.Extract(e).Present, ShouldBeFalse)
		})

		Convey("When extracting the position attribute", func() {
			d, _ := catalog.Lookup("position")

			Convey("Then it should mirror the role", func() {
				v := d.Extract(e)
				So(v.Present, ShouldBeTrue)
				So(v.Str, ShouldEqual, "Sales")
			})

			Convey("Then an empty role should be absent", func() {
				v := d.Extract(model.Employee{EmployeeID: "EMP-0002"})
				So(v.Present, ShouldBeFalse)
			})
		})
	})
}
