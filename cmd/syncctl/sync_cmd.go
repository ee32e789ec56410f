package main

import (
	"fmt"

	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/internal/application/ingestion"
	"github.com/jhoicas/productividad-api/internal/infrastructure/postgres"
	"github.com/jhoicas/productividad-api/internal/infrastructure/sheets"
	"github.com/spf13/cobra"
)

var syncTargets = []string{"clients", "work-orders", "field-visits", "all"}

func newSyncCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "sync [clients|work-orders|field-visits|all]",
		Short:     "Sincroniza una hoja (o todas) hacia PostgreSQL",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: syncTargets,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, e.cfg.DB, e.cfg.App.Name+"-syncctl")
			if err != nil {
				return err
			}
			defer pool.Close()

			source, err := sheets.NewSource(ctx, e.cfg.Sheets.SpreadsheetID, e.cfg.Sheets.CredentialsFile)
			if err != nil {
				return err
			}
			uc := ingestion.NewSyncUseCase(source, postgres.NewTxRunner(pool), ingestion.Sheets{
				Clients:     e.cfg.Sheets.ClientsSheet,
				WorkOrders:  e.cfg.Sheets.WorkOrdersSheet,
				FieldVisits: e.cfg.Sheets.FieldSheet,
			}, e.log)

			var results []*dto.SyncResult
			switch args[0] {
			case "clients":
				results = append(results, uc.SyncClients(ctx))
			case "work-orders":
				results = append(results, uc.SyncWorkOrders(ctx))
			case "field-visits":
				results = append(results, uc.SyncFieldVisits(ctx))
			case "all":
				results = uc.SyncAll(ctx)
			}
			if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			return firstRunError(results)
		},
	}
}

// firstRunError hace que el proceso termine con código distinto de cero si alguna corrida abortó.
func firstRunError(results []*dto.SyncResult) error {
	for _, r := range results {
		if r.Status == dto.SyncError {
			return fmt.Errorf("sincronización de %s abortada: %w", r.Entity, r.Err)
		}
	}
	return nil
}
