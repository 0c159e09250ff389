package config

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Conventional file names inside the data directory.
const (
	CustomerInfoFile = "customer_info.csv"
	TouchpointsFile  = "touchpoints.csv"
	ScheduleFile     = "schedule.csv"
	EmployeeInfoFile = "employee_info.csv"
	OutputFile       = "customers_grouped.json"
)

// Config enumerates the four input locations and the output location of one
// pipeline run. Empty per-file fields resolve to the conventional names
// inside DataDir, so a zero-argument run reads and writes the fixed paths.
type Config struct {
	DataDir      string `yaml:"data_dir"`
	CustomerInfo string `yaml:"customer_info"`
	Touchpoints  string `yaml:"touchpoints"`
	Schedule     string `yaml:"schedule"`
	EmployeeInfo string `yaml:"employee_info"`
	Output       string `yaml:"output"`
}

// Default returns the conventional configuration: all five files under the
// relative test-data directory.
func Default() Config {
	return Config{DataDir: "test-data"}
}

// Load reads a YAML file overriding any subset of the default configuration.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, eris.Wrapf(err, "read config %s", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, eris.Wrapf(err, "decode config %s", path)
	}
	return cfg, nil
}

func (c Config) resolve(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(c.DataDir, name)
}

// CustomerInfoPath resolves the customer master input path.
func (c Config) CustomerInfoPath() string { return c.resolve(c.CustomerInfo, CustomerInfoFile) }

// TouchpointsPath resolves the touchpoint input path.
func (c Config) TouchpointsPath() string { return c.resolve(c.Touchpoints, TouchpointsFile) }

// SchedulePath resolves the schedule input path.
func (c Config) SchedulePath() string { return c.resolve(c.Schedule, ScheduleFile) }

// EmployeeInfoPath resolves the employee master input path.
func (c Config) EmployeeInfoPath() string { return c.resolve(c.EmployeeInfo, EmployeeInfoFile) }

// OutputPath resolves the output artifact path.
func (c Config) OutputPath() string { return c.resolve(c.Output, OutputFile) }
