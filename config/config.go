// Package config loads lvroute settings from a YAML file, LVROUTE_*
// environment variables and command-line flags, in increasing priority.
//
// Keys:
//
//	plane_coordinates.axis1_start_end        machine start/end X       (0)
//	plane_coordinates.axis2_start_end        machine start/end Y       (0)
//	route_optimisation.max_iterations        budget cap per layer      (300)
//	route_optimisation.iterations_per_shape  budget per movable shape  (50)
//	route_optimisation.report_every          progress cadence          (50)
//	route_optimisation.max_segment           relocate block length     (3)
//	route_optimisation.allow_reverse         flip shape direction      (false)
//	route_optimisation.shuffle               shuffled scan order       (false)
//	route_optimisation.seed                  shuffle seed              (0)
//	route_optimisation.eps                   acceptance tolerance      (1e-9)
//	store.path                               bbolt order store         ("" = off)
//
// The environment variable for a key is LVROUTE_ plus the key upper-cased
// with dots replaced by underscores, e.g. LVROUTE_ROUTE_OPTIMISATION_SEED.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/route"
	"github.com/katalvlaran/lvroute/tsp"
	"github.com/mitchellh/go-homedir"
	"github.com/paulmach/orb"
	"github.com/spf13/viper"
)

// Keys used with viper.
const (
	KeyAxis1              = "plane_coordinates.axis1_start_end"
	KeyAxis2              = "plane_coordinates.axis2_start_end"
	KeyMaxIterations      = "route_optimisation.max_iterations"
	KeyIterationsPerShape = "route_optimisation.iterations_per_shape"
	KeyReportEvery        = "route_optimisation.report_every"
	KeyMaxSegment         = "route_optimisation.max_segment"
	KeyAllowReverse       = "route_optimisation.allow_reverse"
	KeyShuffle            = "route_optimisation.shuffle"
	KeySeed               = "route_optimisation.seed"
	KeyEps                = "route_optimisation.eps"
	KeyStorePath          = "store.path"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVROUTE"

// DefaultFile is the config file name looked up in the home directory.
const DefaultFile = ".lvroute.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// PlaneCoordinates is the machine start/end point.
type PlaneCoordinates struct {
	Axis1StartEnd float64 `mapstructure:"axis1_start_end"`
	Axis2StartEnd float64 `mapstructure:"axis2_start_end"`
}

// RouteOptimisation tunes the planner and the optimizer.
type RouteOptimisation struct {
	MaxIterations      int     `mapstructure:"max_iterations"`
	IterationsPerShape int     `mapstructure:"iterations_per_shape"`
	ReportEvery        int     `mapstructure:"report_every"`
	MaxSegment         int     `mapstructure:"max_segment"`
	AllowReverse       bool    `mapstructure:"allow_reverse"`
	Shuffle            bool    `mapstructure:"shuffle"`
	Seed               int64   `mapstructure:"seed"`
	Eps                float64 `mapstructure:"eps"`
}

// Store configures the persisted order store.
type Store struct {
	Path string `mapstructure:"path"`
}

// Config is the decoded configuration.
type Config struct {
	PlaneCoordinates  PlaneCoordinates  `mapstructure:"plane_coordinates"`
	RouteOptimisation RouteOptimisation `mapstructure:"route_optimisation"`
	Store             Store             `mapstructure:"store"`

	// File is the config file that was read, empty when none was.
	File string `mapstructure:"-"`
}

// New returns a viper instance with defaults and environment overrides set.
// Flags may be bound to it before Read.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAxis1, 0.0)
	v.SetDefault(KeyAxis2, 0.0)
	v.SetDefault(KeyMaxIterations, route.DefaultMaxIterations)
	v.SetDefault(KeyIterationsPerShape, route.DefaultIterationsPerShape)
	v.SetDefault(KeyReportEvery, route.DefaultReportEvery)
	v.SetDefault(KeyMaxSegment, tsp.DefaultMaxSegment)
	v.SetDefault(KeyAllowReverse, false)
	v.SetDefault(KeyShuffle, false)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyEps, tsp.DefaultEps)
	v.SetDefault(KeyStorePath, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Read loads the config file into v. An empty path means ~/.lvroute.yaml,
// which may be absent; an explicit path must exist. A leading ~ is expanded.
func Read(v *viper.Viper, path string) error {
	if path != "" {
		p, err := homedir.Expand(path)
		if err != nil {
			return fmt.Errorf("config: expand %s: %w", path, err)
		}
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", p, err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("config: home dir: %w", err)
	}
	v.AddConfigPath(home)
	v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read default: %w", err)
	}

	return nil
}

// Decode unmarshals and validates the settings held by v.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	c.File = v.ConfigFileUsed()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load is New, Read and Decode in one call.
func Load(path string) (Config, error) {
	v := New()
	if err := Read(v, path); err != nil {
		return Config{}, err
	}

	return Decode(v)
}

// Validate rejects settings the planner cannot use.
func (c Config) Validate() error {
	r := c.RouteOptimisation
	switch {
	case r.MaxIterations < 0:
		return fmt.Errorf("%w: %s=%d", ErrInvalid, KeyMaxIterations, r.MaxIterations)
	case r.IterationsPerShape < 0:
		return fmt.Errorf("%w: %s=%d", ErrInvalid, KeyIterationsPerShape, r.IterationsPerShape)
	case r.MaxSegment < 0:
		return fmt.Errorf("%w: %s=%d", ErrInvalid, KeyMaxSegment, r.MaxSegment)
	case r.Eps < 0:
		return fmt.Errorf("%w: %s=%g", ErrInvalid, KeyEps, r.Eps)
	}

	return nil
}

// Route converts c into planner settings.
func (c Config) Route() route.Config {
	r := c.RouteOptimisation

	return route.Config{
		Start:              orb.Point{c.PlaneCoordinates.Axis1StartEnd, c.PlaneCoordinates.Axis2StartEnd},
		MaxIterations:      r.MaxIterations,
		IterationsPerShape: r.IterationsPerShape,
		ReportEvery:        r.ReportEvery,
		Options: tsp.Options{
			Eps:          r.Eps,
			MaxSegment:   r.MaxSegment,
			AllowReverse: r.AllowReverse,
			Shuffle:      r.Shuffle,
			Seed:         r.Seed,
		},
	}
}
