package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Expedientes-api/internal/application/dto"
	"github.com/jhoicas/Expedientes-api/internal/domain"
	"github.com/jhoicas/Expedientes-api/internal/domain/licencia"
)

func newLicenciaCmd(env *entorno) *cobra.Command {
	var hoyFlag string
	cmd := &cobra.Command{
		Use:   "licencia <AAAA-MM-DD>",
		Short: "Muestra el semáforo de vencimiento de una licencia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.cargar(); err != nil {
				return err
			}
			loc := env.cfg.OC.Location()
			vence, err := time.ParseInLocation("2006-01-02", args[0], loc)
			if err != nil {
				return fmt.Errorf("%w: vencimiento %q (formato AAAA-MM-DD)", domain.ErrInvalidInput, args[0])
			}
			now := time.Now().In(loc)
			hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
			if hoyFlag != "" {
				if hoy, err = time.ParseInLocation("2006-01-02", hoyFlag, loc); err != nil {
					return fmt.Errorf("%w: --hoy %q (formato AAAA-MM-DD)", domain.ErrInvalidInput, hoyFlag)
				}
			}
			r := licencia.Semaforo(vence, hoy)
			return imprimirJSON(cmd.OutOrStdout(), dto.SemaforoResponse{
				Vence:         vence.Format("2006-01-02"),
				Estado:        string(r.Estado),
				Dias:          r.Dias,
				DiasRestantes: r.DiasRestantes,
				Vencida:       r.Vencida,
			})
		},
	}
	cmd.Flags().StringVar(&hoyFlag, "hoy", "", "fecha de referencia AAAA-MM-DD (por defecto hoy)")
	return cmd
}
