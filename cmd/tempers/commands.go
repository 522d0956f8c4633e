package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/whatf0xx/tempers/internal/config"
	"github.com/whatf0xx/tempers/mt"
	"github.com/whatf0xx/tempers/predict"
)

// app holds state shared by all commands.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tempers",
		Short: "Generate, untemper and predict MT19937 output",
		Long: `tempers works with the 32-bit Mersenne Twister (MT19937). It can
generate reference output, undo the tempering transformation and clone a
generator from 624 of its outputs, whatever their phase.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		a.generateCmd(),
		a.untemperCmd(),
		a.predictCmd(),
		a.stateCmd(),
		a.crackCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg)
	return nil
}

// newLogger returns a logger writing to w in the configured format.
func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// withInput calls fn with a stream over the named file, or over the
// command's input when name is empty or "-". A failure to close the file
// is returned when fn succeeds.
func withInput(cmd *cobra.Command, name string, fn func(*predict.Reader) error) (err error) {
	if name != "" && name != "-" {
		f, oerr := os.Open(name)
		if oerr != nil {
			return oerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		return fn(predict.NewReader(f))
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		fmt.Fprintln(cmd.ErrOrStderr(), "reading outputs from stdin, one per line (end with Ctrl-D)")
	}
	return fn(predict.NewReader(in))
}

// recoverGenerator clones the generator behind the outputs in the named
// input and advances it past the last of them.
func (a *app) recoverGenerator(cmd *cobra.Command, name string, lookahead int) (*mt.MT, error) {
	p, err := predict.NewPredictor(
		predict.WithLookahead(lookahead),
		predict.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	var g *mt.MT
	err = withInput(cmd, name, func(r *predict.Reader) error {
		var err error
		if g, err = p.Predict(r); err != nil {
			return err
		}
		n, err := predict.Follow(g, r)
		if err != nil {
			return err
		}
		a.logger.Debug("followed stream to its end", slog.Int("outputs", n))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to recover generator state: %w", err)
	}
	return g, nil
}

// printUint32s writes one value per line.
func printUint32s(w io.Writer, nums ...uint32) error {
	for _, n := range nums {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
