package main

import (
	"flag"

	"github.com/plus3/spacefabric/fabric"
)

type flags struct {
	config   string
	rows     int
	columns  int
	spacing  float64
	falloff  int
	epsilon  float64
	sunMass  float64
	probe    float64
	debug    bool
	width    int
	height   int
	hideSun  bool
	noShade  bool
	lineSize float64
}

func parseFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	def := fabric.DefaultOptions()
	f := &flags{}
	fs.StringVar(&f.config, "config", "", "TOML file with fabric options.")
	fs.IntVar(&f.rows, "rows", def.Rows, "Grid row count.")
	fs.IntVar(&f.columns, "columns", def.Columns, "Grid column count.")
	fs.Float64Var(&f.spacing, "spacing", def.Spacing, "World distance between adjacent vertices.")
	fs.IntVar(&f.falloff, "falloff", int(def.Falloff), "Falloff exponent, 1 or 2.")
	fs.Float64Var(&f.epsilon, "epsilon", def.Epsilon, "Minimum-distance clamp of the depth function.")
	fs.Float64Var(&f.sunMass, "mass", 1, "Mass of the central star in solar masses.")
	fs.Float64Var(&f.probe, "probe", 0.3, "Mass of the cursor probe.")
	fs.BoolVar(&f.debug, "debug", true, "Show the Dear ImGui debug panels.")
	fs.IntVar(&f.width, "width", 1280, "Window width.")
	fs.IntVar(&f.height, "height", 720, "Window height.")
	fs.BoolVar(&f.hideSun, "no-sun", false, "Start without the central star.")
	fs.BoolVar(&f.noShade, "flat", false, "Draw the grid without curvature shading.")
	fs.Float64Var(&f.lineSize, "line-width", 1, "Grid line width in pixels.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// meshOptions loads the config file, if any, then applies the grid flags the
// user set explicitly on top of it.
func (f *flags) meshOptions(fs *flag.FlagSet) (fabric.Options, error) {
	opts := fabric.DefaultOptions()
	if f.config != "" {
		loaded, err := fabric.LoadOptions(f.config)
		if err != nil {
			return fabric.Options{}, err
		}
		opts = loaded
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "rows":
			opts.Rows = f.rows
		case "columns":
			opts.Columns = f.columns
		case "spacing":
			opts.Spacing = f.spacing
		case "falloff":
			opts.Falloff = fabric.Falloff(f.falloff)
		case "epsilon":
			opts.Epsilon = f.epsilon
		}
	})
	return opts, opts.Validate()
}
