package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/okian/talentmatch/internal/adapters/audit"
	"github.com/okian/talentmatch/internal/adapters/directory"
	service "github.com/okian/talentmatch/internal/app"
	"github.com/okian/talentmatch/internal/domain/model"
	"github.com/okian/talentmatch/internal/engine"
	"github.com/okian/talentmatch/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func fp(f float64) *float64 { return &f }

func sp(s string) *string { return &s }

func testStore() directory.Store {
	employees := []model.Employee{
		{EmployeeID: "A", FullName: "Alice", Role: "Sales", IQ: fp(100), Education: sp("Bachelor")},
		{EmployeeID: "B", FullName: "Bob", Role: "Sales", IQ: fp(110), Education: sp("Master")},
		{EmployeeID: "C", FullName: "Carol", Role: "Analyst", IQ: fp(120), Education: sp("Bachelor")},
	}
	store, err := directory.NewMemoryStore(employees)
	if err != nil {
		panic(err)
	}
	return store
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service without a directory", t, func() {
		svc := service.New()

		Convey("Then starting fails", func() {
			So(errors.Is(svc.Start(ctx), service.ErrNotReady), ShouldBeTrue)
		})
	})

	Convey("Given a configured service", t, func() {
		svc := service.New(
			service.WithDirectory(testStore()),
			service.WithWorkerCount(2),
		)

		Convey("When used before starting", func() {
			_, err := svc.Match(ctx, service.MatchRequest{BenchmarkIDs: []string{"A"}})
			So(errors.Is(err, service.ErrNotReady), ShouldBeTrue)

			_, err = svc.Employees(ctx)
			So(errors.Is(err, service.ErrNotReady), ShouldBeTrue)
		})

		Convey("When started", func() {
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			Convey("Then starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("Then stats report the population", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["population"], ShouldEqual, 3)
			})

			Convey("Then the directory is listable", func() {
				snap, err := svc.Employees(ctx)
				So(err, ShouldBeNil)
				So(snap.Len(), ShouldEqual, 3)
				So(svc.Count(ctx), ShouldEqual, 3)
			})
		})
	})
}

func TestServiceMatch(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc := service.New(
			service.WithDirectory(testStore()),
			service.WithWorkerCount(2),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When matching against one benchmark", func() {
			outcome, err := svc.Match(ctx, service.MatchRequest{BenchmarkIDs: []string{"B"}})

			So(err, ShouldBeNil)
			So(outcome.CacheHit, ShouldBeFalse)
			So(outcome.VacancyID, ShouldEqual, uuid.Nil)
			So(outcome.Result.Summaries, ShouldHaveLength, 3)
			So(outcome.Result.Summaries[0].EmployeeID, ShouldEqual, "B")

			Convey("Then repeating the request hits the cache", func() {
				again, err := svc.Match(ctx, service.MatchRequest{BenchmarkIDs: []string{"B"}})

				So(err, ShouldBeNil)
				So(again.CacheHit, ShouldBeTrue)
				So(again.Result, ShouldPointTo, outcome.Result)
			})

			Convey("Then reordered benchmark ids share the cache entry", func() {
				first, err := svc.Match(ctx, service.MatchRequest{BenchmarkIDs: []string{"A", "C"}})
				So(err, ShouldBeNil)
				second, err := svc.Match(ctx, service.MatchRequest{BenchmarkIDs: []string{"C", "A"}})
				So(err, ShouldBeNil)
				So(second.CacheHit, ShouldBeTrue)
				So(second.Result, ShouldPointTo, first.Result)
			})
		})

		Convey("When the benchmark set is invalid", func() {
			_, err := svc.Match(ctx, service.MatchRequest{BenchmarkIDs: []string{"A", "B", "C", "A"}})

			So(errors.Is(err, engine.ErrInvalidBenchmark), ShouldBeTrue)
		})
	})
}

func TestServiceAudit(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with an audit sink", t, func() {
		sink := audit.NewMemorySink()
		svc := service.New(
			service.WithDirectory(testStore()),
			service.WithAuditSink(sink),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When matching with vacancy context", func() {
			outcome, err := svc.Match(ctx, service.MatchRequest{
				BenchmarkIDs: []string{"B"},
				RoleName:     "Account Manager",
				JobLevel:     "IV",
				RolePurpose:  "Own key accounts",
			})

			So(err, ShouldBeNil)
			So(outcome.VacancyID, ShouldNotEqual, uuid.Nil)

			Convey("Then the vacancy and ranking are recorded", func() {
				v, ok := sink.Vacancy(outcome.VacancyID)
				So(ok, ShouldBeTrue)
				So(v.RoleName, ShouldEqual, "Account Manager")
				So(v.BenchmarkIDs, ShouldResemble, []string{"B"})

				ranking, ok := sink.Ranking(outcome.VacancyID)
				So(ok, ShouldBeTrue)
				So(ranking, ShouldResemble, outcome.Result.Summaries)
			})
		})

		Convey("When matching without a role name", func() {
			outcome, err := svc.Match(ctx, service.MatchRequest{BenchmarkIDs: []string{"B"}})

			So(err, ShouldBeNil)

			Convey("Then no vacancy is recorded", func() {
				So(outcome.VacancyID, ShouldEqual, uuid.Nil)
			})
		})
	})

	Convey("Given a failing audit sink", t, func() {
		svc := service.New(
			service.WithDirectory(testStore()),
			service.WithAuditSink(failingSink{}),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When matching with vacancy context", func() {
			outcome, err := svc.Match(ctx, service.MatchRequest{
				BenchmarkIDs: []string{"A"},
				RoleName:     "Analyst",
			})

			Convey("Then the match still succeeds", func() {
				So(err, ShouldBeNil)
				So(outcome.Result.Summaries, ShouldHaveLength, 3)
				So(outcome.VacancyID, ShouldEqual, uuid.Nil)
			})
		})
	})
}

type failingSink struct{}

func (failingSink) RecordVacancy(context.Context, audit.Vacancy) (uuid.UUID, error) {
	return uuid.Nil, audit.ErrRecordFailed
}

func (failingSink) RecordRanking(context.Context, uuid.UUID, []model.Summary) error {
	return audit.ErrRecordFailed
}
