package main

import (
	"fmt"

	"github.com/jhoicas/productividad-api/internal/infrastructure/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd(e *env) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Aplica o revierte las migraciones embebidas",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			conn := e.cfg.DB.ConnectionString()
			if args[0] == "up" {
				return postgres.Migrate(conn, e.log)
			}
			if steps <= 0 {
				return fmt.Errorf("--steps debe ser mayor que cero")
			}
			return postgres.MigrateDown(conn, steps, e.log)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "Migraciones a revertir (solo down)")
	return cmd
}
