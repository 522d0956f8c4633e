package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/whatf0xx/tempers/mt"
	"github.com/whatf0xx/tempers/predict"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		seed  uint32
		count int
		skip  int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print MT19937 outputs for a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 || skip < 0 {
				return fmt.Errorf("count and skip must not be negative")
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			g := mt.New(seed)
			for i := 0; i < skip; i++ {
				g.Uint32()
			}
			out := make([]uint32, count)
			for i := range out {
				out[i] = g.Uint32()
			}
			a.logger.Debug("generated outputs",
				slog.Any("seed", seed),
				slog.Int("skip", skip),
				slog.Int("count", count))
			return printUint32s(cmd.OutOrStdout(), out...)
		},
	}
	cmd.Flags().Uint32Var(&seed, "seed", mt.DefaultSeed, "generator seed (default from config)")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of outputs to print")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of outputs to discard first")
	return cmd
}

func (a *app) untemperCmd() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "untemper [VALUE...]",
		Short: "Recover raw state words from outputs (read from stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := mt.Untemper
			if reverse {
				fn = mt.Temper
			}
			if len(args) > 0 {
				for _, arg := range args {
					n, err := strconv.ParseUint(arg, 0, 32)
					if err != nil {
						return err
					}
					if err := printUint32s(cmd.OutOrStdout(), fn(uint32(n))); err != nil {
						return err
					}
				}
				return nil
			}

			return withInput(cmd, "", func(r *predict.Reader) error {
				for {
					n, ok := r.Next()
					if !ok {
						return r.Err()
					}
					if err := printUint32s(cmd.OutOrStdout(), fn(n)); err != nil {
						return err
					}
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "temper instead of untemper")
	return cmd
}
