package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataFile != "planner.json" {
		t.Errorf("data file = %q", cfg.DataFile)
	}
	if cfg.WorkingHoursPerDay != 8 || cfg.MaxPlanningDays != 730 || cfg.HandoffDivisor != 2 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	content := "dataFile: /var/lib/planner/data.json\nmaxPlanningDays: 365\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataFile != "/var/lib/planner/data.json" {
		t.Errorf("data file = %q", cfg.DataFile)
	}
	if cfg.MaxPlanningDays != 365 {
		t.Errorf("max planning days = %d, want 365", cfg.MaxPlanningDays)
	}
	// Untouched keys keep their defaults.
	if cfg.WorkingHoursPerDay != 8 {
		t.Errorf("working hours = %v, want 8", cfg.WorkingHoursPerDay)
	}
}

func TestLoadEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	if err := os.WriteFile(path, []byte("maxPlanningDays: 365\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLANNER_MAX_PLANNING_DAYS", "90")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxPlanningDays != 90 {
		t.Errorf("max planning days = %d, want 90 from environment", cfg.MaxPlanningDays)
	}
}

func TestLoadMissingYAMLIsFine(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("missing yaml should not error, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PLANNER_HANDOFF_DIVISOR", "0")
	if _, err := Load(""); err == nil {
		t.Fatal("expected an error for a zero handoff divisor")
	}
}
