package config

import "time"

// SimulationConfig describes the settlement to simulate and how to drive it
type SimulationConfig struct {
	// Wall-clock time between steps; zero runs as fast as possible
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"min=0"`

	// Number of steps a run executes
	Steps int `mapstructure:"steps" validate:"min=1"`

	// Buffer capacity for sites that do not set one
	DefaultCapacity float64 `mapstructure:"default_capacity" validate:"gt=0"`

	// PID file guarding against concurrent simulations
	PIDFile string `mapstructure:"pid_file" validate:"required"`

	// Persist every pickup to the collection ledger
	RecordCollections bool `mapstructure:"record_collections"`

	Sites      []SiteConfig      `mapstructure:"sites" validate:"dive"`
	Collectors []CollectorConfig `mapstructure:"collectors" validate:"dive"`

	// Scripted mode timeline, entries "step:MODE[:site,site]"
	ModeScript []string `mapstructure:"mode_script"`
}

// SiteConfig is one production site of the layout
type SiteConfig struct {
	Name        string  `mapstructure:"name" validate:"required"`
	Kind        string  `mapstructure:"kind" validate:"required,resource_kind"`
	X           float64 `mapstructure:"x"`
	Y           float64 `mapstructure:"y"`
	Z           float64 `mapstructure:"z"`
	Capacity    float64 `mapstructure:"capacity" validate:"min=0"`
	RatePerStep float64 `mapstructure:"rate_per_step" validate:"min=0"`
}

// CollectorConfig is one collector and its start position
type CollectorConfig struct {
	ID string  `mapstructure:"id" validate:"required"`
	X  float64 `mapstructure:"x"`
	Y  float64 `mapstructure:"y"`
	Z  float64 `mapstructure:"z"`
}
