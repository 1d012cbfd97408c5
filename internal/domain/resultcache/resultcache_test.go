package resultcache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/talentmatch/internal/domain/model"
	"github.com/okian/talentmatch/internal/domain/resultcache"
	. "github.com/smartystreets/goconvey/convey"
)

func result(version string) *model.MatchResult {
	return &model.MatchResult{SnapshotVersion: version}
}

func TestKey(t *testing.T) {
	Convey("Given a snapshot version and benchmark ids", t, func() {
		Convey("Then benchmark order does not change the key", func() {
			a := resultcache.Key("v1", []string{"B", "A", "C"})
			b := resultcache.Key("v1", []string{"C", "B", "A"})
			So(a, ShouldEqual, b)
		})

		Convey("Then different versions produce different keys", func() {
			a := resultcache.Key("v1", []string{"A"})
			b := resultcache.Key("v2", []string{"A"})
			So(a, ShouldNotEqual, b)
		})

		Convey("Then the input slice is not mutated", func() {
			ids := []string{"B", "A"}
			_ = resultcache.Key("v1", ids)
			So(ids, ShouldResemble, []string{"B", "A"})
		})
	})
}

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()

	Convey("Given a cache with default options", t, func() {
		c := resultcache.New()

		Convey("When getting a missing key", func() {
			_, ok := c.Get(ctx, "missing")
			So(ok, ShouldBeFalse)
		})

		Convey("When putting and getting", func() {
			c.Put(ctx, "k1", result("v1"))
			got, ok := c.Get(ctx, "k1")

			So(ok, ShouldBeTrue)
			So(got.SnapshotVersion, ShouldEqual, "v1")
			So(c.Size(), ShouldEqual, 1)
		})

		Convey("When putting the same key twice", func() {
			c.Put(ctx, "k1", result("v1"))
			c.Put(ctx, "k1", result("v2"))

			Convey("Then the first entry wins and size stays at one", func() {
				got, _ := c.Get(ctx, "k1")
				So(got.SnapshotVersion, ShouldEqual, "v1")
				So(c.Size(), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a cache bounded to two entries", t, func() {
		c := resultcache.New(resultcache.WithMaxSize(2))

		Convey("When inserting past the bound", func() {
			c.Put(ctx, "k1", result("v1"))
			c.Put(ctx, "k2", result("v2"))
			c.Put(ctx, "k3", result("v3"))

			Convey("Then the size stays at the bound", func() {
				So(c.Size(), ShouldEqual, 2)
			})

			Convey("Then the most recently added entry was evicted", func() {
				_, ok := c.Get(ctx, "k2")
				So(ok, ShouldBeFalse)
				_, ok = c.Get(ctx, "k1")
				So(ok, ShouldBeTrue)
				_, ok = c.Get(ctx, "k3")
				So(ok, ShouldBeTrue)
			})
		})
	})

	Convey("Given an unbounded cache", t, func() {
		c := resultcache.New(resultcache.WithMaxSize(0))

		Convey("When inserting many entries", func() {
			for i := 0; i < 1000; i++ {
				c.Put(ctx, fmt.Sprintf("k%d", i), result("v"))
			}

			Convey("Then nothing is evicted", func() {
				So(c.Size(), ShouldEqual, 1000)
			})
		})
	})

	Convey("Given concurrent access", t, func() {
		c := resultcache.New(resultcache.WithMaxSize(64))
		var wg sync.WaitGroup

		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(worker int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					key := fmt.Sprintf("k%d-%d", worker, j)
					c.Put(ctx, key, result("v"))
					c.Get(ctx, key)
				}
			}(i)
		}
		wg.Wait()

		Convey("Then the size never exceeds the bound", func() {
			So(c.Size(), ShouldBeLessThanOrEqualTo, 64)
		})
	})
}
