package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"cage/internal/config"
	"cage/internal/core"
	"cage/internal/logging"
	_ "cage/internal/sims/all"
)

// globals are the root's persistent flags.
type globals struct {
	logLevel string
	logJSON  bool
}

// options are the flags of one command that starts a sim.
type options struct {
	*globals
	configPath string
	sim        string
	width      int
	height     int
	seed       int64
	steps      int
	tps        int
	renderer   string
	color      bool
	set        []string
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "cage",
		Short:         "Run cellular automata",
		Long:          `cage steps cellular automata and agent sims: Life and its relatives, one-dimensional rule explorers, reaction models and ants.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&g.logJSON, "log-json", false, "log JSON lines instead of text")

	root.AddCommand(newListCmd(), newRunCmd(g), newTUICmd(g), newGUICmd(g))
	return root
}

// bindScenario registers the flags that override scenario fields.
func bindScenario(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML scenario file")
	f.StringVar(&opts.sim, "sim", "", "sim to run (see 'cage list')")
	f.IntVar(&opts.width, "width", 0, "grid width")
	f.IntVar(&opts.height, "height", 0, "grid height")
	f.Int64Var(&opts.seed, "seed", 0, "seed for the reset")
	f.StringArrayVar(&opts.set, "set", nil, "sim parameter override, key=value (repeatable)")
}

// scenario merges the file, environment and flags, in that order.
func (o *options) scenario(cmd *cobra.Command) (config.Scenario, error) {
	s, err := config.Load(o.configPath)
	if err != nil {
		return s, err
	}
	f := cmd.Flags()
	if f.Changed("sim") {
		s.Sim = o.sim
	}
	if f.Changed("width") {
		s.Width = o.width
	}
	if f.Changed("height") {
		s.Height = o.height
	}
	if f.Changed("seed") {
		s.Seed = o.seed
	}
	if f.Lookup("steps") != nil && f.Changed("steps") {
		s.Steps = o.steps
	}
	if f.Lookup("tps") != nil && f.Changed("tps") {
		s.TPS = o.tps
	}
	if f.Lookup("render") != nil && f.Changed("render") {
		s.Renderer = o.renderer
	}
	if f.Lookup("color") != nil && f.Changed("color") {
		s.Color = o.color
	}
	if o.logLevel != "" {
		s.LogLevel = o.logLevel
	}
	if err := s.Set(o.set); err != nil {
		return s, err
	}
	return s, s.Validate()
}

func (o *options) logger(cmd *cobra.Command, s config.Scenario) (*slog.Logger, error) {
	level, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(cmd.ErrOrStderr(), logging.Config{Level: level, JSON: o.logJSON, Service: "cage"}), nil
}

// build constructs the scenario's sim and wires the logger into engines.
func build(s config.Scenario, log *slog.Logger) (core.Sim, error) {
	sim, err := core.New(s.Sim, s.ToMap())
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(core.Names(), ", "))
	}
	if e, ok := sim.(*core.Engine); ok {
		e.SetLogger(log)
	}
	log.Debug("sim built", "sim", s.Sim, "params", s.ToMap())
	return sim, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available sims and their default parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range core.Names() {
				sim, err := core.New(name, nil)
				if err != nil {
					return err
				}
				var params []string
				for _, g := range sim.Parameters().Groups {
					for _, p := range g.Params {
						params = append(params, p.Key+"="+p.Value)
					}
				}
				fmt.Fprintf(out, "%-12s %s\n", name, strings.Join(params, " "))
			}
			return nil
		},
	}
}
