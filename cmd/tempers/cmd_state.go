package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/whatf0xx/tempers/mt"
)

// snapshot is the YAML form of a generator state. Index counts the words
// already emitted since the last twist, as in Python's random.getstate.
type snapshot struct {
	Index int      `yaml:"index"`
	Words []uint32 `yaml:"words,flow"`
}

func newSnapshot(g *mt.MT) snapshot {
	state := g.State()
	return snapshot{Index: g.Index(), Words: state[:]}
}

func (a *app) stateCmd() *cobra.Command {
	var (
		seed uint32
		skip int
		from string
	)
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Dump a generator state as YAML",
		Long: `state prints the raw state words and cursor of a generator seeded with
--seed, or of the generator recovered from the outputs in --from, positioned
after the last of them. --skip discards further outputs first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if skip < 0 {
				return fmt.Errorf("skip must not be negative")
			}
			var g *mt.MT
			if cmd.Flags().Changed("from") {
				var err error
				if g, err = a.recoverGenerator(cmd, from, a.cfg.Predict.Lookahead); err != nil {
					return err
				}
			} else {
				if !cmd.Flags().Changed("seed") {
					seed = a.cfg.Seed
				}
				g = mt.New(seed)
			}
			for i := 0; i < skip; i++ {
				g.Uint32()
			}

			data, err := yaml.Marshal(newSnapshot(g))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().Uint32Var(&seed, "seed", mt.DefaultSeed, "generator seed (default from config)")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of outputs to discard before dumping")
	cmd.Flags().StringVar(&from, "from", "", "recover the state from outputs in this file (- for stdin)")
	return cmd
}
