package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coreman2200/funtimes-keymatrix/internal/dispatch"
	"github.com/coreman2200/funtimes-keymatrix/internal/frames"
	"github.com/coreman2200/funtimes-keymatrix/internal/keypad"
)

func newRunCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Poll the keypad and play the bound animation for each press",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			a, err := newApp(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			keys, err := a.keypad(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if m, ok := keys.(*keypad.Matrix); ok {
				defer m.Halt()
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if cfg.Metrics.Addr != "" {
				go func() {
					if err := a.metrics.Serve(ctx, cfg.Metrics.Addr, a.log); err != nil {
						a.log.Error().Err(err).Msg("metrics server crashed")
					}
				}()
			}

			err = a.dispatcher(keys).Run(ctx)
			if errors.Is(err, context.Canceled) {
				a.log.Info().Msg("shutdown complete")
				return nil
			}
			return err
		},
	}
}

func newPlayCmd(f *rootFlags) *cobra.Command {
	var sequences []string
	cmd := &cobra.Command{
		Use:   "play [KEY...]",
		Short: "Handle the given key presses once, as if typed on the keypad",
		Long: "Handle the given key presses once, as if typed on the keypad.\n" +
			"With --sequence, play catalog sequences by name after the keys.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(sequences) == 0 {
				return errors.New("nothing to play: give keys or --sequence")
			}
			keys := make([]keypad.KeyCode, 0, len(args))
			for _, s := range args {
				k, err := keypad.ParseKey(s)
				if err != nil {
					return err
				}
				keys = append(keys, k)
			}
			names := make([]frames.Name, 0, len(sequences))
			for _, s := range sequences {
				n, err := frames.ParseName(s)
				if err != nil {
					return err
				}
				names = append(names, n)
			}

			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			a, err := newApp(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			d := a.dispatcher(nil)
			for _, k := range keys {
				if err := d.Handle(k); err != nil {
					return fmt.Errorf("key %s: %w", k, err)
				}
			}
			b := dispatch.DefaultBindings(a.countingSequence())
			for _, n := range names {
				if err := d.Execute(b.SequenceAction(n)); err != nil {
					return fmt.Errorf("sequence %s: %w", n, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&sequences, "sequence", "s", nil, "sequence name to play (repeatable, see list)")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the key bindings and the sequence catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			b := dispatch.DefaultBindings(frames.CountDown)
			fmt.Fprintln(w, "KEY\tACTION\tMODE")
			for _, k := range keypad.All() {
				a := b.Lookup(k)
				mode := "-"
				if a.Kind == dispatch.PlaySequence || a.Kind == dispatch.FillSolid {
					mode = a.Blend.Mode.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", k, a, mode)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "SEQUENCE\tFRAMES\tREPEAT\tDELAY")
			for _, n := range frames.Names() {
				s := frames.Get(n)
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", n, s.Len(), s.Repeat, s.Delay)
			}
			fmt.Fprintln(w)
			fmt.Fprintf(w, "ghost colors:\t%s\n", strings.Join(frames.GhostColors(), ", "))
			return w.Flush()
		},
	}
}
