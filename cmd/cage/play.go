package main

import (
	"github.com/spf13/cobra"

	"cage/internal/app"
	"cage/internal/play"
	"cage/internal/term"
)

// historyRows is how many generations a one-dimensional sim shows at once.
const historyRows = 200

func newTUICmd(g *globals) *cobra.Command {
	opts := &options{globals: g}
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Play a sim interactively in the terminal",
		Args:  cobra.NoArgs,
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
			sess, err := play.NewSession(sim, s.Seed, historyRows, log)
			if err != nil {
				return err
			}
			return term.New(sess, s.TPS, s.Color, log).Run()
		},
	}
	bindScenario(cmd, opts)
	cmd.Flags().IntVar(&opts.tps, "tps", 0, "steps per second while running")
	cmd.Flags().BoolVar(&opts.color, "color", false, "colour the field")
	return cmd
}

func newGUICmd(g *globals) *cobra.Command {
	opts := &options{globals: g}
	gui := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Play a sim in a window (needs the ebiten build tag)",
		Args:  cobra.NoArgs,
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
			sess, err := play.NewSession(sim, s.Seed, historyRows, log)
			if err != nil {
				return err
			}
			gui.TPS = s.TPS
			return app.Run(app.New(sess, gui.Scale), *gui)
		},
	}
	bindScenario(cmd, opts)
	cmd.Flags().IntVar(&opts.tps, "tps", 0, "steps per second while running")
	gui.Bind(cmd.Flags())
	return cmd
}
