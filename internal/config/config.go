// SPDX-License-Identifier: MIT

// Package config loads pacetable settings from a YAML file and the
// environment.
package config

import (
	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Config is the pacetable configuration. Environment variables override
// values read from the file.
type Config struct {
	Environment string  `yaml:"environment" env:"PACETABLE_ENVIRONMENT" env-default:"production"`
	Table       Table   `yaml:"table"`
	Metrics     Metrics `yaml:"metrics"`
}

// Table holds the defaults of the table command.
type Table struct {
	Format    string   `yaml:"format"     env:"PACETABLE_FORMAT"     env-default:"text"`
	From      float64  `yaml:"from"       env:"PACETABLE_FROM"       env-default:"5"`
	Step      float64  `yaml:"step"       env:"PACETABLE_STEP"       env-default:"0.2"`
	Count     int      `yaml:"count"      env:"PACETABLE_COUNT"      env-default:"29"`
	SpeedUnit string   `yaml:"speed_unit" env:"PACETABLE_SPEED_UNIT" env-default:"mi/hr"`
	Distances []string `yaml:"distances"  env:"PACETABLE_DISTANCES"  env-default:"1 mile,5 km,10 km,0.5 marathon,1 marathon"`
}

// Metrics controls the catalog metrics dump written after each command.
type Metrics struct {
	Dump bool `yaml:"dump" env:"PACETABLE_METRICS_DUMP" env-default:"false"`
}

// Load reads the configuration from path, or from the environment alone
// when path is empty, and validates it.
func Load(path string) (*Config, error) {
	var (
		cfg Config
		err error
	)
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the table settings.
func (c *Config) Validate() error {
	switch {
	case c.Table.Count <= 0:
		return errors.Errorf("%w: table count %d", ErrInvalid, c.Table.Count)
	case c.Table.Step <= 0:
		return errors.Errorf("%w: table step %g", ErrInvalid, c.Table.Step)
	case c.Table.From <= 0:
		return errors.Errorf("%w: table from %g", ErrInvalid, c.Table.From)
	case len(c.Table.Distances) == 0:
		return errors.Errorf("%w: no table distances", ErrInvalid)
	case c.Table.SpeedUnit == "":
		return errors.Errorf("%w: empty speed unit", ErrInvalid)
	}

	return nil
}
