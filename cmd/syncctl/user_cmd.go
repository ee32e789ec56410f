package main

import (
	"github.com/jhoicas/productividad-api/internal/application/auth"
	"github.com/jhoicas/productividad-api/internal/domain/entity"
	"github.com/jhoicas/productividad-api/internal/infrastructure/postgres"
	"github.com/spf13/cobra"
)

func newCreateUserCmd(e *env) *cobra.Command {
	var username, password, role string
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Crea un usuario del panel (admin | mantenimiento)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, e.cfg.DB, e.cfg.App.Name+"-syncctl")
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
				Secret:     e.cfg.JWT.Secret,
				ExpMinutes: e.cfg.JWT.Expiration,
				Issuer:     e.cfg.JWT.Issuer,
			})
			user, err := uc.CreateUser(ctx, username, password, role)
			if err != nil {
				return err
			}
			e.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("usuario creado")
			return writeJSON(cmd.OutOrStdout(), user)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Nombre de usuario (requerido)")
	cmd.Flags().StringVar(&password, "password", "", "Contraseña, mínimo 8 caracteres (requerido)")
	cmd.Flags().StringVar(&role, "role", entity.RoleMantenimiento, "Rol: admin | mantenimiento")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
