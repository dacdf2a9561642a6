package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Expedientes-api/pkg/jwt"
)

func newTokenCmd(env *entorno) *cobra.Command {
	var (
		user string
		role string
		exp  int
	)
	cmd := &cobra.Command{
		Use:     "token",
		Short:   "Emite un JWT para consumir la API",
		Example: `  occtl token --user 42 --role compras`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.cargar(); err != nil {
				return err
			}
			if exp <= 0 {
				exp = env.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(env.cfg.JWT.Secret, user, role, env.cfg.JWT.Issuer, exp)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "identificador del usuario")
	cmd.Flags().StringVar(&role, "role", "consulta", "rol: admin | compras | consulta")
	cmd.Flags().IntVar(&exp, "exp", 0, "minutos de validez (por defecto JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
