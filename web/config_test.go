// File: web/config_test.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package web_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/andrewha/mds2022/web"
)

func TestLoadDefaults(t *testing.T) {
	c := qt.New(t)

	cfg := web.Load()

	c.Assert(cfg.Environment, qt.Equals, "development")
	c.Assert(cfg.ServerPort, qt.Equals, "8080")
	c.Assert(cfg.LogLevel, qt.Equals, "info")
	c.Assert(cfg.RatePerSec, qt.Equals, 50.0)
	c.Assert(cfg.RateBurst, qt.Equals, 100)
	c.Assert(cfg.PlotSamples, qt.Equals, 100)
}

func TestLoadFileOverrides(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), "solver.ini")
	contents := `[server]
port = 9090
log_level = debug

[limits]
rate_per_sec = 2.5
rate_burst = 5

[plot]
samples = 25
`
	c.Assert(os.WriteFile(path, []byte(contents), 0o644), qt.IsNil)

	cfg, err := web.LoadFile(path)
	c.Assert(err, qt.IsNil)

	c.Assert(cfg.ServerPort, qt.Equals, "9090")
	c.Assert(cfg.LogLevel, qt.Equals, "debug")
	c.Assert(cfg.RatePerSec, qt.Equals, 2.5)
	c.Assert(cfg.RateBurst, qt.Equals, 5)
	c.Assert(cfg.PlotSamples, qt.Equals, 25)

	// Keys absent from the file keep their defaults.
	c.Assert(cfg.Environment, qt.Equals, "development")
}

func TestLoadFileMissing(t *testing.T) {
	c := qt.New(t)

	_, err := web.LoadFile(filepath.Join(t.TempDir(), "absent.ini"))
	c.Assert(err, qt.IsNotNil)
}
