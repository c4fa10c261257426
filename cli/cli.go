// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cli implements the divephys command line interface
package cli

import (
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/margauxf/divephysfun/ana"
	"github.com/margauxf/divephysfun/inp"
	"github.com/spf13/cobra"
)

// Version of divephys
const Version = "0.1.0"

// options holds the persistent flags
type options struct {
	cfgPath string // configuration file
	regime  string // overrides data.regime
	verbose bool   // show messages
}

// NewRootCmd returns the root command with all sub-commands
func NewRootCmd() *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:     "divephys",
		Short:   "Boyle's law calculator and visualiser for scuba diving",
		Long:    "Converts between depth and absolute pressure in seawater or freshwater and computes how\nthe volume of a fixed quantity of gas changes with pressure (Boyle's law).",
		Version: Version,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			io.Verbose = o.verbose
			chk.Verbose = o.verbose
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&o.cfgPath, "config", "c", "", "configuration file (.yaml)")
	flags.StringVarP(&o.regime, "regime", "r", "", "liquid regime: seawater or freshwater")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "show messages")

	root.AddCommand(
		pressureCmd(&o),
		depthCmd(&o),
		volumeCmd(),
		areaCmd(),
		profileCmd(&o),
		calcCmd(&o),
		gaugeCmd(&o),
		reportCmd(&o),
		plotCmd(&o),
		configCmd(&o),
	)
	return root
}

// config reads the configuration file and applies the flags
func (o *options) config() (cfg *inp.Config, err error) {
	cfg, err = inp.ReadConfig(o.cfgPath)
	if err != nil {
		return
	}
	if o.regime != "" {
		cfg.Regime, err = ana.ParseRegime(o.regime)
		if err != nil {
			return nil, err
		}
		cfg.Data.Regime = string(cfg.Regime)
	}
	io.Pf("%v\n", cfg)
	return
}

// parseFloats converts all arguments to numbers
func parseFloats(names string, args []string) (vals []float64, err error) {
	vals = make([]float64, len(args))
	for i, a := range args {
		vals[i], err = strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, chk.Err("invalid %s %q", names, a)
		}
	}
	return
}

// slider returns the snapshot at elevation elev after checking the slider position
func slider(cfg *inp.Config, elev float64) (snap ana.Snapshot, err error) {
	if err = cfg.Slider.CheckPosition(elev); err != nil {
		return
	}
	z := 0 - elev // not -elev: the surface must give +0
	return ana.Descend(cfg.Data.V0, z, cfg.Regime)
}

// profile computes the profile given by the configuration
func profile(cfg *inp.Config) (*ana.Profile, error) {
	return ana.NewProfile(cfg.Data.V0, 0, cfg.Profile.Zmax, cfg.Profile.Np, cfg.Regime)
}
