package main

import (
	"github.com/jhoicas/productividad-api/pkg/config"
	"github.com/jhoicas/productividad-api/pkg/logger"
	"github.com/spf13/cobra"
)

// env configuración y logger compartidos por los subcomandos.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}
	cmd := &cobra.Command{
		Use:           "syncctl",
		Short:         "Herramientas de operación de productividad-api",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{
				Env:     cfg.App.Env,
				Level:   cfg.App.LogLevel,
				Service: cfg.App.Name + "-syncctl",
				Output:  cmd.ErrOrStderr(),
			})
			return nil
		},
	}
	cmd.AddCommand(newSyncCmd(e), newMigrateCmd(e), newCreateUserCmd(e))
	return cmd
}
