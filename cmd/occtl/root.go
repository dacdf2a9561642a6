package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Expedientes-api/internal/app"
	"github.com/jhoicas/Expedientes-api/pkg/config"
	"github.com/jhoicas/Expedientes-api/pkg/logger"
)

var version = "1.0.0"

// entorno carga configuración y logger una sola vez por ejecución.
type entorno struct {
	cfg *config.Config
	log *logger.Logger
}

func (e *entorno) cargar() error {
	if e.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).WithComponent("occtl")
	return nil
}

func (e *entorno) servicios(ctx context.Context) (*app.Servicios, error) {
	if err := e.cargar(); err != nil {
		return nil, err
	}
	return app.Build(ctx, e.cfg, e.log, nil)
}

func newRootCmd() *cobra.Command {
	env := &entorno{}
	root := &cobra.Command{
		Use:   "occtl",
		Short: "Herramientas de línea de comandos para órdenes de compra",
		Long: `occtl opera el circuito de órdenes de compra sin pasar por la API HTTP.

Lee la misma configuración que la API (variables de entorno, .env o config.env):
  DATABASE_URL o DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME
  JWT_SECRET, JWT_ISSUER, JWT_EXPIRATION_MINUTES
  OC_ZONA_HORARIA, OC_FORMATO_NUMERO, OC_POLITICA_EXCEDENTE`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMigrateCmd(env),
		newTopesCmd(env),
		newPrepararCmd(env),
		newTokenCmd(env),
		newLicenciaCmd(env),
	)
	return root
}

func imprimirJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
