package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Scenario describes one layered-graph benchmark shape. Scenarios can be
// supplied in a TOML file passed as the first argument; otherwise
// defaultScenarios run.
type Scenario struct {
	Name           string  `toml:"name"`
	Width          int64   `toml:"width"`
	TotalLayers    int64   `toml:"total_layers"`
	StaticFraction float64 `toml:"static_fraction"`
	NSources       int64   `toml:"n_sources"`
	ReadFraction   float64 `toml:"read_fraction"`
	Iterations     int64   `toml:"iterations"`
}

type scenarioFile struct {
	Scenarios []Scenario `toml:"scenario"`
}

var defaultScenarios = []Scenario{
	{
		Name:           "simple component",
		Width:          10,
		TotalLayers:    5,
		StaticFraction: 1,
		NSources:       2,
		ReadFraction:   0.2,
		Iterations:     600000,
	},
	{
		Name:           "dynamic component",
		Width:          10,
		TotalLayers:    10,
		StaticFraction: 0.75,
		NSources:       6,
		ReadFraction:   0.2,
		Iterations:     15000,
	},
	{
		Name:           "large web app",
		Width:          1000,
		TotalLayers:    12,
		StaticFraction: 0.95,
		NSources:       4,
		ReadFraction:   1,
		Iterations:     7000,
	},
	{
		Name:           "wide dense",
		Width:          1000,
		TotalLayers:    5,
		StaticFraction: 1,
		NSources:       25,
		ReadFraction:   1,
		Iterations:     3000,
	},
	{
		Name:           "deep",
		Width:          5,
		TotalLayers:    500,
		StaticFraction: 1,
		NSources:       3,
		ReadFraction:   1,
		Iterations:     500,
	},
	{
		Name:           "very dynamic",
		Width:          100,
		TotalLayers:    15,
		StaticFraction: 0.5,
		NSources:       6,
		ReadFraction:   1,
		Iterations:     2000,
	},
}

func loadScenarios(path string) ([]Scenario, error) {
	var f scenarioFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%s contains no [[scenario]] blocks", path)
	}
	for i, s := range f.Scenarios {
		if s.Width <= 0 || s.TotalLayers <= 0 || s.NSources <= 0 || s.Iterations <= 0 {
			return nil, fmt.Errorf("scenario %d (%q) has a non-positive dimension", i, s.Name)
		}
	}
	return f.Scenarios, nil
}
