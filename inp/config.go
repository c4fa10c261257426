// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.yaml) configuration file
package inp

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/margauxf/divephysfun/ana"
	"gopkg.in/yaml.v3"
)

// Data holds the physical data of the problem
type Data struct {
	Regime string  `yaml:"regime"` // "seawater" or "freshwater"; empty means seawater
	V0     float64 `yaml:"v0"`     // volume of the gas parcel at the surface [L]
}

// SliderData holds the range of the depth slider. Values are elevations: 0 is the
// surface and negative values are below it
type SliderData struct {
	Min  float64 `yaml:"min"`  // deepest position; e.g. -100
	Max  float64 `yaml:"max"`  // shallowest position; e.g. 0
	Step float64 `yaml:"step"` // increment; positions are Max - k・Step
}

// stepTol is the tolerance to accept a position as a multiple of Step
const stepTol = 1e-9

// ProfileData holds the range of depths used to compute profiles
type ProfileData struct {
	Zmax float64 `yaml:"zmax"` // maximum depth (magnitude) [m]
	Np   int     `yaml:"np"`   // number of points
}

// PlotData holds figure options
type PlotData struct {
	Scale  float64 `yaml:"scale"`  // factor multiplying disk areas to obtain marker sizes
	DirOut string  `yaml:"dirout"` // directory for figures and reports; e.g. /tmp/divephysfun
	FnKey  string  `yaml:"fnkey"`  // filename key of figures
	Width  int     `yaml:"width"`  // width of reports [px]
	Height int     `yaml:"height"` // height of reports [px]
}

// Config holds all input data
type Config struct {
	Data    Data        `yaml:"data"`
	Slider  SliderData  `yaml:"slider"`
	Profile ProfileData `yaml:"profile"`
	Plot    PlotData    `yaml:"plot"`

	// derived
	Regime ana.Regime `yaml:"-"` // parsed regime
}

// DefaultConfig returns the configuration of a one litre parcel in seawater
func DefaultConfig() *Config {
	o := &Config{
		Data:    Data{Regime: string(ana.DefaultRegime), V0: 1},
		Slider:  SliderData{Min: -100, Max: 0, Step: 0.5},
		Profile: ProfileData{Zmax: 100, Np: 100},
		Plot:    PlotData{Scale: 20, DirOut: "/tmp/divephysfun", FnKey: "boyle", Width: 300, Height: 350},
	}
	o.Regime = ana.DefaultRegime
	return o
}

// PostProcess parses the regime and fixes zero values
func (o *Config) PostProcess() (err error) {
	o.Regime, err = ana.ParseRegime(o.Data.Regime)
	if err != nil {
		return
	}
	o.Data.Regime = string(o.Regime)
	if o.Slider.Step <= 0 {
		o.Slider.Step = 0.5
	}
	if o.Profile.Np == 0 {
		o.Profile.Np = 100
	}
	if o.Plot.Scale <= 0 {
		o.Plot.Scale = 20
	}
	if o.Plot.DirOut == "" {
		o.Plot.DirOut = "/tmp/divephysfun"
	}
	if o.Plot.FnKey == "" {
		o.Plot.FnKey = "boyle"
	}
	return
}

// Validate checks the configuration
func (o *Config) Validate() error {
	if _, err := ana.ParseRegime(o.Data.Regime); err != nil {
		return err
	}
	if !(o.Data.V0 > 0) {
		return chk.Err("data.v0 must be positive. v0 = %g is invalid", o.Data.V0)
	}
	if o.Slider.Max > 0 {
		return chk.Err("slider.max must not be above the surface. max = %g is invalid", o.Slider.Max)
	}
	if o.Slider.Min >= o.Slider.Max {
		return chk.Err("slider.min must be smaller than slider.max. [%g, %g] is invalid", o.Slider.Min, o.Slider.Max)
	}
	if !(o.Slider.Step > 0) || o.Slider.Step > o.Slider.Max-o.Slider.Min {
		return chk.Err("slider.step must be positive and not larger than the slider range. step = %g is invalid", o.Slider.Step)
	}
	if !(o.Profile.Zmax > 0) {
		return chk.Err("profile.zmax must be positive. zmax = %g is invalid", o.Profile.Zmax)
	}
	if -o.Slider.Min > o.Profile.Zmax {
		return chk.Err("profile.zmax must reach the deepest slider position. zmax = %g < %g = -slider.min", o.Profile.Zmax, -o.Slider.Min)
	}
	if o.Profile.Np < 2 {
		return chk.Err("profile.np must be at least 2. np = %d is invalid", o.Profile.Np)
	}
	if o.Plot.Width <= 0 || o.Plot.Height <= 0 {
		return chk.Err("plot.width and plot.height must be positive. %dx%d is invalid", o.Plot.Width, o.Plot.Height)
	}
	return nil
}

// CheckPosition checks that elev is a slider position: inside [Min, Max] and a multiple of
// Step below Max
func (o SliderData) CheckPosition(elev float64) error {
	if !(elev >= o.Min && elev <= o.Max) {
		return chk.Err("elevation %g is outside the slider range [%g, %g]", elev, o.Min, o.Max)
	}
	k := (o.Max - elev) / o.Step
	if math.Abs(k-math.Round(k)) > stepTol*math.Max(1, math.Abs(k)) {
		return chk.Err("elevation %g is not a slider position: use multiples of %g from %g", elev, o.Step, o.Max)
	}
	return nil
}

// LoadFromFile reads a YAML file on top of the default configuration
func LoadFromFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}
	o := DefaultConfig()
	if err = yaml.Unmarshal(b, o); err != nil {
		return nil, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	return o, nil
}

// ReadConfig loads, post-processes and validates the configuration. An empty path gives the default one
func ReadConfig(path string) (o *Config, err error) {
	o = DefaultConfig()
	if path != "" {
		o, err = LoadFromFile(path)
		if err != nil {
			return nil, err
		}
	}
	if err = o.PostProcess(); err != nil {
		return nil, err
	}
	if err = o.Validate(); err != nil {
		return nil, err
	}
	return
}

// SaveToFile writes the configuration as YAML
func (o *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	b, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err = os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}
	return nil
}

// String returns a table with the input data
func (o Config) String() string {
	return io.ArgsTable("INPUT DATA",
		"liquid regime", "data.regime", o.Data.Regime,
		"volume at the surface [L]", "data.v0", o.Data.V0,
		"deepest slider position [m]", "slider.min", o.Slider.Min,
		"shallowest slider position [m]", "slider.max", o.Slider.Max,
		"slider increment [m]", "slider.step", o.Slider.Step,
		"profile max depth [m]", "profile.zmax", o.Profile.Zmax,
		"profile number of points", "profile.np", o.Profile.Np,
		"marker scale factor", "plot.scale", o.Plot.Scale,
		"output directory", "plot.dirout", o.Plot.DirOut,
	)
}
