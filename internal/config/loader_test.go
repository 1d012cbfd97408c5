package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/okian/talentmatch/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given no configuration sources", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.WorkerCount, ShouldEqual, runtime.NumCPU())
			So(cfg.BaselinePolicy, ShouldEqual, "lexicographic")
			So(cfg.ResultCacheSize, ShouldEqual, 128)
			So(cfg.DirectorySource, ShouldEqual, config.DirectorySeed)
			So(cfg.SeedSize, ShouldEqual, 500)
			So(cfg.AuditEnabled, ShouldBeFalse)
		})
	})
}

func TestEnvOverrides(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		t.Setenv("TALENTMATCH_ADDR", ":7777")
		t.Setenv("TALENTMATCH_WORKER_COUNT", "4")
		t.Setenv("TALENTMATCH_BASELINE_POLICY", "mode")
		t.Setenv("TALENTMATCH_AUDIT_ENABLED", "true")

		cfg, err := config.Load(context.Background())

		Convey("Then env values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7777")
			So(cfg.WorkerCount, ShouldEqual, 4)
			So(cfg.BaselinePolicy, ShouldEqual, "mode")
			So(cfg.AuditEnabled, ShouldBeTrue)
		})
	})
}

func TestFileConfig(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		yaml := "addr: \":6060\"\nseed_size: 50\nresult_cache_size: 16\n"
		So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
		t.Setenv("TALENTMATCH_CONFIG", path)

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then file values apply over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.SeedSize, ShouldEqual, 50)
				So(cfg.ResultCacheSize, ShouldEqual, 16)
			})
		})

		Convey("When env overrides the file", func() {
			t.Setenv("TALENTMATCH_ADDR", ":6061")
			cfg, err := config.Load(context.Background())

			Convey("Then env wins", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6061")
			})
		})
	})

	Convey("Given a missing config file", t, func() {
		t.Setenv("TALENTMATCH_CONFIG", "/nonexistent/config.yaml")

		_, err := config.Load(context.Background())

		So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
	})
}

func TestValidation(t *testing.T) {
	Convey("Given invalid configurations", t, func() {
		Convey("When the directory source is unknown", func() {
			t.Setenv("TALENTMATCH_DIRECTORY_SOURCE", "carrier-pigeon")

			_, err := config.Load(context.Background())
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When the postgres directory has no database url", func() {
			t.Setenv("TALENTMATCH_DIRECTORY_SOURCE", "postgres")

			_, err := config.Load(context.Background())
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When the worker count is not positive", func() {
			t.Setenv("TALENTMATCH_WORKER_COUNT", "0")

			_, err := config.Load(context.Background())
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
