package main

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/whatf0xx/tempers/crack"
)

func (a *app) crackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Recover generator seeds by exhaustive search",
	}
	cmd.AddCommand(a.crackSeedCmd(), a.crackKeyCmd(), a.crackTokenCmd())
	return cmd
}

func (a *app) searcher() *crack.Searcher {
	return crack.NewSearcher(
		crack.WithWorkers(a.cfg.Search.Workers),
		crack.WithLogger(a.logger))
}

func (a *app) crackSeedCmd() *cobra.Command {
	var from, to uint32
	cmd := &cobra.Command{
		Use:   "seed OUTPUT",
		Short: "Find the seed of a generator from its first output",
		Long: `seed searches [--from, --to] for a seed whose first output is OUTPUT.
Without flags it searches the last search.window seconds of Unix time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return err
			}
			lo, hi := crack.Window(uint32(time.Now().Unix()), a.cfg.Search.Window)
			if cmd.Flags().Changed("from") {
				lo = from
			}
			if cmd.Flags().Changed("to") {
				hi = to
			}
			seed, err := a.searcher().Seed(cmd.Context(), uint32(first), lo, hi)
			if err != nil {
				return err
			}
			return printUint32s(cmd.OutOrStdout(), seed)
		},
	}
	cmd.Flags().Uint32Var(&from, "from", 0, "lowest seed to try")
	cmd.Flags().Uint32Var(&to, "to", 0, "highest seed to try")
	return cmd
}

func (a *app) crackKeyCmd() *cobra.Command {
	var known string
	cmd := &cobra.Command{
		Use:   "key CIPHERTEXT",
		Short: "Find the 16-bit key of an MT19937 keystream",
		Long: `key searches all 16-bit seeds for the keystream that encrypted the
hex-encoded CIPHERTEXT, given plaintext --known that ends the message.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphertext, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("failed to decode ciphertext: %w", err)
			}
			key, err := a.searcher().Key(cmd.Context(), ciphertext, []byte(known))
			if err != nil {
				return err
			}
			return printUint32s(cmd.OutOrStdout(), uint32(key))
		},
	}
	cmd.Flags().StringVar(&known, "known", "", "known plaintext at the end of the message")
	_ = cmd.MarkFlagRequired("known")
	return cmd
}

func (a *app) crackTokenCmd() *cobra.Command {
	var now int64
	cmd := &cobra.Command{
		Use:   "token TOKEN",
		Short: "Find the timestamp that seeded a hex-encoded reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("failed to decode token: %w", err)
			}
			if !cmd.Flags().Changed("now") {
				now = time.Now().Unix()
			}
			if now < 0 || now > math.MaxUint32 {
				return fmt.Errorf("now %d is not a 32-bit Unix time", now)
			}
			seed, err := a.searcher().Token(cmd.Context(), token, uint32(now), a.cfg.Search.Window)
			if err != nil {
				return err
			}
			return printUint32s(cmd.OutOrStdout(), seed)
		},
	}
	cmd.Flags().Int64Var(&now, "now", 0, "Unix time the search ends at (default current time)")
	return cmd
}
