// Package config loads engine limits from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/pixelcanvas/pixeloid/pkg/engine"
)

type Config struct {
	ScreenWidth     int     `envconfig:"PIXELOID_SCREEN_WIDTH" default:"800"`
	ScreenHeight    int     `envconfig:"PIXELOID_SCREEN_HEIGHT" default:"600"`
	MinScale        float64 `envconfig:"PIXELOID_MIN_SCALE" default:"0.125"`
	MaxTextureSide  int     `envconfig:"PIXELOID_MAX_TEXTURE_SIDE" default:"8192"`
	SoftTextureSide int     `envconfig:"PIXELOID_SOFT_TEXTURE_SIDE" default:"4096"`
	ScalesPerObject int     `envconfig:"PIXELOID_VISIBILITY_SCALES" default:"4"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Engine maps the loaded values onto the engine configuration.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		ScreenSize:      geom.NewVec(c.ScreenWidth, c.ScreenHeight),
		MinScale:        c.MinScale,
		MaxTextureSide:  c.MaxTextureSide,
		SoftTextureSide: c.SoftTextureSide,
		ScalesPerObject: c.ScalesPerObject,
	}
}
