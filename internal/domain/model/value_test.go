package model_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/talentmatch/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValueConstructors(t *testing.T) {
	Convey("Given value constructors", t, func() {
		Convey("When building from literals", func() {
			So(model.Num(1.5).Present, ShouldBeTrue)
			So(model.Num(1.5).Num, ShouldEqual, 1.5)
			So(model.Str("x").Present, ShouldBeTrue)
			So(model.Str("x").Str, ShouldEqual, "x")
		})

		Convey("When building from nil pointers", func() {
			So(model.NumPtr(nil).Present, ShouldBeFalse)
			So(model.StrPtr(nil).Present, ShouldBeFalse)
		})

		Convey("When building from non-nil pointers", func() {
			f := 2.5
			s := "y"
			So(model.NumPtr(&f).Num, ShouldEqual, 2.5)
			So(model.StrPtr(&s).Str, ShouldEqual, "y")
		})
	})
}

func TestValueString(t *testing.T) {
	Convey("Given values to render", t, func() {
		So(model.Num(87.5).String(), ShouldEqual, "87.5")
		So(model.Str("Bachelor").String(), ShouldEqual, "Bachelor")
		So(model.Value{}.String(), ShouldEqual, "")
	})
}

func TestValueJSON(t *testing.T) {
	Convey("Given values to marshal", t, func() {
		Convey("Then numerics render as numbers", func() {
			b, err := json.Marshal(model.Num(87.5))
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, "87.5")
		})

		Convey("Then categoricals render as strings", func() {
			b, err := json.Marshal(model.Str("Bachelor"))
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `"Bachelor"`)
		})

		Convey("Then absent values render as null", func() {
			b, err := json.Marshal(model.Value{})
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, "null")
		})
	})
}

func TestSnapshot(t *testing.T) {
	Convey("Given a snapshot", t, func() {
		snap := model.NewSnapshot("v1", []model.Employee{
			{EmployeeID: "A"},
			{EmployeeID: "B"},
		})

		So(snap.Len(), ShouldEqual, 2)

		e, ok := snap.Get("A")
		So(ok, ShouldBeTrue)
		So(e.EmployeeID, ShouldEqual, "A")

		_, ok = snap.Get("Z")
		So(ok, ShouldBeFalse)
	})
}
