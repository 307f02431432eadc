package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-demoform/pkg/model"
	"github.com/goliatone/go-demoform/pkg/render"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.FetchDelay != time.Second {
		t.Fatalf("expected one second default delay, got %s", cfg.FetchDelay)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demoform.yaml")
	doc := `
fetch_delay: 250ms
output: pretty
log_level: debug
cities:
  - id: 10
    label: Madrid
  - id: 11
    label: Rome
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Config{
		FetchDelay: 250 * time.Millisecond,
		Cities:     []model.CityOption{{ID: 10, Label: "Madrid"}, {ID: 11, Label: "Rome"}},
		Output:     "pretty",
		LogLevel:   "debug",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.OutputFormat() != render.OutputFormatPrettyText {
		t.Fatalf("unexpected output format %s", cfg.OutputFormat())
	}
	if level, _ := cfg.Level(); level != slog.LevelDebug {
		t.Fatalf("unexpected level %s", level)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"negative delay":  "fetch_delay: -1s\n",
		"bad output":      "output: xml\n",
		"bad level":       "log_level: loud\n",
		"unknown key":     "theme: dark\n",
		"duplicate city":  "cities:\n  - {id: 1, label: A}\n  - {id: 1, label: B}\n",
		"unlabelled city": "cities:\n  - {id: 1}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(doc)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
