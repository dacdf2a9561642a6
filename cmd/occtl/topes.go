package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Expedientes-api/internal/domain"
)

func newTopesCmd(env *entorno) *cobra.Command {
	topes := &cobra.Command{
		Use:   "topes",
		Short: "Consulta y modifica la tabla de topes de contratación",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista los topes ordenados por monto máximo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := env.servicios(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			out, err := svc.Topes.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIPO\tMONTO MÁXIMO")
			for _, t := range out {
				fmt.Fprintf(tw, "%s\t%s\n", t.TipoContratacion, t.MontoMaximo.StringFixed(2))
			}
			return tw.Flush()
		},
	}

	set := &cobra.Command{
		Use:     "set <tipo> <monto>",
		Short:   "Cambia el monto máximo de un tipo de contratación",
		Example: `  occtl topes set "Contratación directa" 6000000`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			monto, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("%w: monto %q", domain.ErrInvalidAmount, args[1])
			}
			svc, err := env.servicios(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			out, err := svc.Topes.Update(cmd.Context(), args[0], monto)
			if err != nil {
				return err
			}
			return imprimirJSON(cmd.OutOrStdout(), out)
		},
	}

	topes.AddCommand(list, set)
	return topes
}
