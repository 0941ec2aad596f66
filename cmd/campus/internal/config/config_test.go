package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/campusui/campus/pkg/disclosure"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/school/portal/v2\n\ngo 1.24\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ModulePath != "example.com/school/portal/v2" {
		t.Errorf("ModulePath = %q", cfg.ModulePath)
	}
	if cfg.AppName != "portal" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if cfg.Defaults != disclosure.BuiltinDefaults() {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
	if !slices.Equal(cfg.Courses, DefaultCourses) || !slices.Equal(cfg.Terms, DefaultTerms) {
		t.Errorf("showcase lists = %v %v", cfg.Courses, cfg.Terms)
	}
	if cfg.Rates != nil || cfg.Verbose {
		t.Errorf("unexpected rates=%v verbose=%v", cfg.Rates, cfg.Verbose)
	}
}

func TestResolveWithoutModule(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lobby")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ModulePath != "" || cfg.AppName != "lobby" {
		t.Errorf("got module %q app %q", cfg.ModulePath, cfg.AppName)
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
app:
  name: Registrar
disclosure:
  exit_duration: 120ms
  side: top
  align: end
  offset: 8
showcase:
  courses: [Art, " ", Music]
  terms: [Winter]
  rates: [1, 2]
log:
  verbose: true
`)

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := disclosure.Defaults{
		Side:         disclosure.SideTop,
		Align:        disclosure.AlignEnd,
		Offset:       8,
		ExitDuration: 120 * time.Millisecond,
	}
	if cfg.Defaults != want {
		t.Errorf("Defaults = %+v, want %+v", cfg.Defaults, want)
	}
	if cfg.AppName != "Registrar" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if !slices.Equal(cfg.Courses, []string{"Art", "Music"}) {
		t.Errorf("Courses = %q", cfg.Courses)
	}
	if !slices.Equal(cfg.Terms, []string{"Winter"}) || !slices.Equal(cfg.Rates, []float64{1, 2}) {
		t.Errorf("Terms = %v, Rates = %v", cfg.Terms, cfg.Rates)
	}
	if !cfg.Verbose {
		t.Error("expected log.verbose")
	}
}

func TestResolveZeroOffsetIsFlush(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "disclosure:\n  offset: 0\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Defaults.Offset != disclosure.NoOffset || cfg.Defaults.Gap() != 0 {
		t.Errorf("Defaults = %+v, want a flush offset", cfg.Defaults)
	}
}

func TestResolveRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"side", "disclosure:\n  side: middle\n", "disclosure.side"},
		{"align", "disclosure:\n  align: around\n", "disclosure.align"},
		{"offset", "disclosure:\n  offset: -1\n", "offset cannot be negative"},
		{"negative exit", "disclosure:\n  exit_duration: -5ms\n", "exit_duration cannot be negative"},
		{"unparsable exit", "disclosure:\n  exit_duration: soon\n", "disclosure.exit_duration"},
		{"rates", "showcase:\n  rates: [1, 0]\n", "showcase.rates"},
		{"yaml", "app: [\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)
			_, err := Resolve(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Resolve() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/campus\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(nested)

	got, err := FindProjectRoot()
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.EvalSymlinks(root)
	if resolved, _ := filepath.EvalSymlinks(got); resolved != want {
		t.Errorf("FindProjectRoot() = %q, want %q", got, root)
	}
}
