package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Expedientes-api/internal/infrastructure/postgres"
)

func newMigrateCmd(env *entorno) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.cargar(); err != nil {
				return err
			}
			if err := postgres.RunMigrations(env.cfg.DB.ConnectionString()); err != nil {
				return err
			}
			env.log.Info().Msg("migraciones aplicadas")
			fmt.Fprintln(cmd.OutOrStdout(), "migraciones al día")
			return nil
		},
	}
}
