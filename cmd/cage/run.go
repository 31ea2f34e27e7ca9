package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"cage/internal/config"
	"cage/internal/core"
	"cage/internal/metrics"
	"cage/internal/render"
)

func newRunCmd(g *globals) *cobra.Command {
	opts := &options{globals: g}
	var metricsOut string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a sim headless and print its generations",
		Long: `Run resets the sim and steps it until it stops or the step budget is spent.
With --render text each generation is printed: one line per generation for
one-dimensional sims, a frame per generation otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.scenario(cmd)
			if err != nil {
				return err
			}
			log, err := opts.logger(cmd, s)
			if err != nil {
				return err
			}
			sim, err := build(s, log)
			if err != nil {
				return err
			}
			var rec *metrics.Recorder
			if metricsOut != "" {
				rec = metrics.NewRecorder()
				if e, ok := sim.(*core.Engine); ok {
					e.SetObserver(rec)
				}
			}
			start := time.Now()
			if err := run(cmd.OutOrStdout(), sim, s); err != nil {
				return err
			}
			log.Info("run finished", "sim", sim.Name(), "generation", sim.Generation(),
				"live", core.Live(sim.Cells()), "elapsed", time.Since(start).Round(time.Millisecond))
			if rec != nil {
				if err := rec.WriteFile(metricsOut); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			return nil
		},
	}
	bindScenario(cmd, opts)
	f := cmd.Flags()
	f.IntVar(&opts.steps, "steps", 0, "maximum generations to step")
	f.StringVar(&opts.renderer, "render", config.RendererText, "output: text or none")
	f.BoolVar(&opts.color, "color", false, "colour text output")
	f.StringVar(&metricsOut, "metrics-out", "", "write Prometheus text metrics to this file")
	return cmd
}

// run resets sim and steps it, printing generations as configured.
func run(out io.Writer, sim core.Sim, s config.Scenario) error {
	if err := sim.Reset(s.Seed); err != nil {
		return err
	}
	var show func()
	if s.Renderer == config.RendererText {
		text := render.NewText(sim.States(), s.Color)
		if sim.Size().H == 1 {
			show = func() { fmt.Fprintln(out, text.Line(sim.Cells())) }
		} else {
			show = func() {
				fmt.Fprintf(out, "t = %d\n%s\n", sim.Generation(), text.Frame(sim.Size(), sim.Cells(), sim.Agents()))
			}
		}
		show()
	}
	for i := 0; i < s.Steps && sim.Running(); i++ {
		if err := sim.Step(); err != nil {
			return err
		}
		if show != nil {
			show()
		}
	}
	return nil
}
