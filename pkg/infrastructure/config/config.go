// Package config loads runtime settings. Precedence, lowest to highest:
// built-in defaults, an optional YAML file, environment variables (a .env
// file is read first if present).
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings
type Config struct {
	// DataFile is the path of the JSON document
	DataFile string `yaml:"dataFile" envconfig:"DATA_FILE"`

	// WorkingHoursPerDay converts hourly machine capacity to daily output
	WorkingHoursPerDay float64 `yaml:"workingHoursPerDay" envconfig:"WORKING_HOURS_PER_DAY"`

	// MaxPlanningDays caps the forward scheduling walk
	MaxPlanningDays int `yaml:"maxPlanningDays" envconfig:"MAX_PLANNING_DAYS"`

	// HandoffDivisor sets the backward buffer: ceil(steps/divisor) days
	HandoffDivisor int `yaml:"handoffDivisor" envconfig:"HANDOFF_DIVISOR"`

	// DepartmentDayHours converts department hour budgets to days
	DepartmentDayHours float64 `yaml:"departmentDayHours" envconfig:"DEPARTMENT_DAY_HOURS"`

	// LogJSON switches log output from console to structured JSON
	LogJSON bool `yaml:"logJSON" envconfig:"LOG_JSON"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		DataFile:           "planner.json",
		WorkingHoursPerDay: 8,
		MaxPlanningDays:    730,
		HandoffDivisor:     2,
		DepartmentDayHours: 8,
	}
}

// Load builds the configuration. The YAML path may be empty; a missing file
// is not an error, a present but unreadable one is.
func Load(yamlPath string) (Config, error) {
	cfg := Default()

	// Ignore a missing .env; it is optional by definition.
	_ = godotenv.Load()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil && !os.IsNotExist(err) {
			return cfg, errors.Wrapf(err, "reading config %s", yamlPath)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "parsing config %s", yamlPath)
			}
		}
	}

	if err := envconfig.Process("PLANNER", &cfg); err != nil {
		return cfg, errors.Wrap(err, "reading environment")
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DataFile == "" {
		return errors.New("data file path cannot be empty")
	}
	if c.WorkingHoursPerDay <= 0 {
		return errors.Errorf("working hours per day must be positive, got %v", c.WorkingHoursPerDay)
	}
	if c.MaxPlanningDays <= 0 {
		return errors.Errorf("max planning days must be positive, got %d", c.MaxPlanningDays)
	}
	if c.HandoffDivisor <= 0 {
		return errors.Errorf("handoff divisor must be positive, got %d", c.HandoffDivisor)
	}
	if c.DepartmentDayHours <= 0 {
		return errors.Errorf("department day hours must be positive, got %v", c.DepartmentDayHours)
	}
	return nil
}
