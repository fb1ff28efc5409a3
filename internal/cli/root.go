package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Danilo-Couto/simulador-de-pix/internal/config"
	"github.com/Danilo-Couto/simulador-de-pix/internal/infra/logger"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errPixRejected) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

type deps struct {
	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	var debug bool
	rt := &deps{}

	cmd := &cobra.Command{
		Use:           "simulador-de-pix",
		Short:         "Pix transfer simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			level := cfg.App.LogLevel
			if debug {
				level = zerolog.LevelDebugValue
			}

			log, err := logger.New(cfg.App.Env, level)
			if err != nil {
				return err
			}

			rt.cfg = cfg
			rt.log = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(confirmCmd(rt))
	cmd.AddCommand(serveCmd(rt))
	cmd.AddCommand(serveRemoteCmd(rt))
	return cmd
}
