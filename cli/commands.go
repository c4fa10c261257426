// Copyright 2026 The Divephysfun Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/margauxf/divephysfun/ana"
	"github.com/margauxf/divephysfun/calc"
	"github.com/margauxf/divephysfun/inp"
	"github.com/margauxf/divephysfun/out"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/unit"
)

// PascalsPerBar converts bars to pascals
const PascalsPerBar = 1e5

func pressureCmd(o *options) *cobra.Command {
	var si bool
	cmd := &cobra.Command{
		Use:   "pressure <depth>...",
		Short: "Absolute pressure [bar] at depths [m] below the surface",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			Z, err := parseFloats("depth", args)
			if err != nil {
				return err
			}
			P, err := ana.PressuresFromDepths(Z, cfg.Regime)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, z := range Z {
				if si {
					fmt.Fprintf(w, "z = %v  →  p = %v\n", unit.Length(z), unit.Pressure(P[i]*PascalsPerBar))
					continue
				}
				fmt.Fprintf(w, "z = %g m  →  p = %g bar\n", z, P[i])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&si, "si", false, "print SI units (pascals)")
	return cmd
}

func depthCmd(o *options) *cobra.Command {
	var si bool
	cmd := &cobra.Command{
		Use:   "depth <pressure>...",
		Short: "Depth [m] below the surface for absolute pressures [bar]",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			P, err := parseFloats("pressure", args)
			if err != nil {
				return err
			}
			Z, err := ana.DepthsFromPressures(P, cfg.Regime)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, p := range P {
				if si {
					fmt.Fprintf(w, "p = %v  →  z = %v\n", unit.Pressure(p*PascalsPerBar), unit.Length(Z[i]))
					continue
				}
				fmt.Fprintf(w, "p = %g bar  →  z = %g m\n", p, Z[i])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&si, "si", false, "print SI units (pascals)")
	return cmd
}

func volumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volume <V0> <p0> <p1>",
		Short: "Final volume V1 = V0・p0/p1 (Boyle's law)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats("number", args)
			if err != nil {
				return err
			}
			V1, err := ana.FinalVolume(vals[0], vals[1], vals[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "V1 = %g L\n", V1)
			return nil
		},
	}
}

func areaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "area <V>",
		Short: "Equivalent disk area of a spherical parcel of volume V",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats("volume", args)
			if err != nil {
				return err
			}
			A, err := ana.EquivalentDiskArea(vals[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "A = %g\n", A)
			return nil
		},
	}
}

func profileCmd(o *options) *cobra.Command {
	var zmax float64
	var np int
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Table of pressure, volume and disk area along depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("zmax") {
				cfg.Profile.Zmax = zmax
			}
			if cmd.Flags().Changed("np") {
				cfg.Profile.Np = np
			}
			prof, err := profile(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), prof)
			return nil
		},
	}
	cmd.Flags().Float64Var(&zmax, "zmax", 100, "maximum depth [m]")
	cmd.Flags().IntVar(&np, "np", 100, "number of points")
	return cmd
}

func calcCmd(o *options) *cobra.Command {
	var p1, v1, p2, v2 float64
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Solve Boyle's law for p2 or V2 given p1, V1 and one of them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			form := calc.Form{P1: p1, V1: v1}
			if cmd.Flags().Changed("p2") {
				form.P2 = calc.Value(p2)
			}
			if cmd.Flags().Changed("v2") {
				form.V2 = calc.Value(v2)
			}
			res, err := calc.Solve(form, cfg.Regime)
			if err != nil {
				if errors.Is(err, ana.ErrInvalidPressure) {
					fmt.Fprintf(cmd.OutOrStdout(), "The corresponding pressure is p2 = %g bars.\n", res.P2)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&p1, "p1", 1, "initial pressure [bar]")
	flags.Float64Var(&v1, "v1", 1, "initial volume [L]")
	flags.Float64Var(&p2, "p2", 0, "final pressure [bar]")
	flags.Float64Var(&v2, "v2", 0, "final volume [L]")
	return cmd
}

func gaugeCmd(o *options) *cobra.Command {
	var elev float64
	cmd := &cobra.Command{
		Use:   "gauge",
		Short: "Draw the gas parcel at a slider position in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			snap, err := slider(cfg, elev)
			if err != nil {
				return err
			}
			prof, err := profile(cfg)
			if err != nil {
				return err
			}
			g := out.Gauge{
				Zmin:  cfg.Slider.Min,
				Zmax:  cfg.Slider.Max,
				Snap:  snap,
				Scale: out.NewSizeScale(prof, cfg.Plot.Scale),
				Term:  out.TermSize(),
			}
			return g.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Float64VarP(&elev, "elev", "e", 0, "slider position [m]; 0 is the surface, negative is below")
	return cmd
}

func reportCmd(o *options) *cobra.Command {
	var elev float64
	var fn string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write an HTML page with the gas parcel and the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			snap, err := slider(cfg, elev)
			if err != nil {
				return err
			}
			prof, err := profile(cfg)
			if err != nil {
				return err
			}
			rep := out.Report{
				Title:   "Boyle's Law",
				Zmin:    cfg.Slider.Min,
				Zmax:    cfg.Slider.Max,
				Snap:    snap,
				Profile: prof,
				Scale:   out.NewSizeScale(prof, cfg.Plot.Scale),
				Width:   cfg.Plot.Width,
				Height:  cfg.Plot.Height,
			}
			if fn == "" {
				fn = cfg.Plot.FnKey + ".html"
			}
			dir := cfg.Plot.DirOut
			if filepath.IsAbs(fn) || filepath.Dir(fn) != "." {
				dir, fn = filepath.Split(fn)
			}
			path, err := rep.Save(dir, fn)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "file <%s> written\n", path)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&elev, "elev", "e", 0, "slider position [m]; 0 is the surface, negative is below")
	cmd.Flags().StringVarP(&fn, "output", "o", "", "output file; default is <dirout>/<fnkey>.html")
	return cmd
}

func plotCmd(o *options) *cobra.Command {
	var elev float64
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot pressure and volume along depth (requires python and matplotlib)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			prof, err := profile(cfg)
			if err != nil {
				return err
			}
			var snap *ana.Snapshot
			if cmd.Flags().Changed("elev") {
				s, err := slider(cfg, elev)
				if err != nil {
					return err
				}
				snap = &s
			}
			return out.PlotProfile(prof, snap, cfg.Plot.DirOut, cfg.Plot.FnKey)
		},
	}
	cmd.Flags().Float64VarP(&elev, "elev", "e", 0, "mark the slider position [m]")
	return cmd
}

func configCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [file]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "divephys.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg := inp.DefaultConfig()
			if o.regime != "" {
				r, err := ana.ParseRegime(o.regime)
				if err != nil {
					return err
				}
				cfg.Data.Regime = string(r)
			}
			if err := cfg.SaveToFile(path); err != nil {
				return chk.Err("cannot write configuration: %v", err)
			}
			io.Pf("%v\n", cfg)
			fmt.Fprintf(cmd.OutOrStdout(), "file <%s> written\n", path)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the configuration in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg)
			return nil
		},
	})
	return cmd
}
