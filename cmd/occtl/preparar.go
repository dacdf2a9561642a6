package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Expedientes-api/internal/application/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain"
)

func newPrepararCmd(env *entorno) *cobra.Command {
	return &cobra.Command{
		Use:   "preparar <expediente-id>",
		Short: "Prepara el borrador de OC de un expediente de pago y lo imprime en JSON",
		Long: `Prepara el borrador de OC de un expediente de pago.

Cada ejecución consume un número de OC y uno de pedido del período actual.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("%w: id de expediente %q", domain.ErrInvalidInput, args[0])
			}
			svc, err := env.servicios(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			borrador, err := svc.PrepararOC.Preparar(cmd.Context(), id)
			if err != nil {
				return err
			}
			return imprimirJSON(cmd.OutOrStdout(), compras.ToBorradorResponse(borrador))
		},
	}
}
