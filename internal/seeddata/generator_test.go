package seeddata_test

import (
	"testing"

	"github.com/okian/talentmatch/internal/seeddata"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Given a generator with default options", t, func() {
		gen := seeddata.New()
		employees := gen.Generate()

		Convey("Then it produces the default population", func() {
			So(employees, ShouldHaveLength, 500)
		})

		Convey("Then employee ids are sequential and unique", func() {
			So(employees[0].EmployeeID, ShouldEqual, "EMP-0001")
			So(employees[499].EmployeeID, ShouldEqual, "EMP-0500")
			seen := make(map[string]bool, len(employees))
			for _, e := range employees {
				So(seen[e.EmployeeID], ShouldBeFalse)
				seen[e.EmployeeID] = true
			}
		})

		Convey("Then every employee has the projection descriptors", func() {
			for _, e := range employees[:20] {
				So(e.FullName, ShouldNotBeBlank)
				So(e.Directorate, ShouldNotBeBlank)
				So(e.Role, ShouldNotBeBlank)
				So(e.Grade, ShouldNotBeBlank)
			}
		})
	})

	Convey("Given a fixed seed", t, func() {
		a := seeddata.New(seeddata.WithSize(50), seeddata.WithSeed(7)).Generate()
		b := seeddata.New(seeddata.WithSize(50), seeddata.WithSeed(7)).Generate()

		Convey("Then generation is reproducible", func() {
			So(a, ShouldResemble, b)
		})

		Convey("Then a different seed diverges", func() {
			c := seeddata.New(seeddata.WithSize(50), seeddata.WithSeed(8)).Generate()
			So(c, ShouldNotResemble, a)
		})
	})

	Convey("Given a generated population", t, func() {
		employees := seeddata.New(seeddata.WithSize(200)).Generate()

		Convey("Then strengths are distinct per employee when present", func() {
			for _, e := range employees {
				seen := make(map[string]bool)
				for _, s := range e.Strengths {
					if s == nil {
						continue
					}
					So(seen[*s], ShouldBeFalse)
					seen[*s] = true
				}
			}
		})

		Convey("Then numeric scores stay in plausible ranges", func() {
			for _, e := range employees {
				if e.IQ != nil {
					So(*e.IQ, ShouldBeGreaterThan, 0)
					So(*e.IQ, ShouldBeLessThan, 200)
				}
				if e.PapiT != nil {
					So(*e.PapiT, ShouldBeGreaterThan, 0)
					So(*e.PapiT, ShouldBeLessThan, 12)
				}
			}
		})

		Convey("Then some records have gaps for the missing-value paths", func() {
			var gaps int
			for _, e := range employees {
				if e.Pauli == nil {
					gaps++
				}
			}
			So(gaps, ShouldBeGreaterThan, 0)
		})
	})
}
