package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) predictCmd() *cobra.Command {
	var (
		count     int
		lookahead int
	)
	cmd := &cobra.Command{
		Use:   "predict [FILE]",
		Short: "Clone a generator from its outputs and print what it produces next",
		Long: `predict reads decimal MT19937 outputs, one or more per line, from FILE or
stdin. It needs at least 625 values. Once it has recovered the generator
state it checks the rest of the input against it, then prints the next
--count outputs the generator will produce.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Predict.Count
			}
			if !cmd.Flags().Changed("lookahead") {
				lookahead = a.cfg.Predict.Lookahead
			}
			if count < 0 {
				return fmt.Errorf("count must not be negative")
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			}
			g, err := a.recoverGenerator(cmd, name, lookahead)
			if err != nil {
				return err
			}

			out := make([]uint32, count)
			for i := range out {
				out[i] = g.Uint32()
			}
			return printUint32s(cmd.OutOrStdout(), out...)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of predicted outputs to print (default from config)")
	cmd.Flags().IntVar(&lookahead, "lookahead", 1, "outputs a candidate state must predict before it is accepted (default from config)")
	return cmd
}
