// Package app arma el grafo de dependencias compartido por la API y el CLI.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Expedientes-api/internal/application/compras"
	domcompras "github.com/jhoicas/Expedientes-api/internal/domain/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
	"github.com/jhoicas/Expedientes-api/internal/infrastructure/cache"
	"github.com/jhoicas/Expedientes-api/internal/infrastructure/excel"
	"github.com/jhoicas/Expedientes-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Expedientes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Expedientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Expedientes-api/pkg/clock"
	"github.com/jhoicas/Expedientes-api/pkg/config"
	"github.com/jhoicas/Expedientes-api/pkg/logger"
)

// Servicios casos de uso listos para usar.
type Servicios struct {
	PrepararOC *compras.PrepararOCUseCase
	Ordenes    *compras.OrdenCompraUseCase
	Documentos *compras.DocumentosUseCase
	Topes      *compras.TopesUseCase
	Secuencia  *compras.SecuenciaAllocator

	pool  *pgxpool.Pool
	redis *cache.RedisStore
}

// Close libera la conexión a PostgreSQL y a Redis.
func (s *Servicios) Close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
}

// Build conecta a PostgreSQL (y Redis si está configurado) y construye los casos de uso.
// registerer puede ser nil: en ese caso no se publican métricas.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger, registerer prometheus.Registerer) (*Servicios, error) {
	politica, err := domcompras.ParsePoliticaExcedente(cfg.OC.PoliticaExcedente)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	s := &Servicios{pool: pool}

	var metricas compras.Metricas
	if registerer != nil {
		m, err := metrics.New(registerer)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("registrar métricas: %w", err)
		}
		metricas = m
	}

	// topesClasificacion alimenta Preparar, Recalcular y Crear: siempre lee la base.
	var topes repository.TopeRepository = postgres.NewTopeRepository(pool)
	topesClasificacion := topes
	if cfg.Redis.Enabled() {
		store := cache.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := store.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, se consulta la base en cada lectura")
		}
		s.redis = store
		tc := cache.NewTopesCache(topes, store, cfg.Redis.TTL, log)
		topes, topesClasificacion = tc, tc.SinCache()
	}

	txRunner := postgres.NewTxRunner(pool)
	expedientes := postgres.NewExpedienteRepository(pool)
	ordenes := postgres.NewOrdenCompraRepository(pool)

	secuencia, err := compras.NewSecuenciaAllocator(txRunner, cfg.OC.FormatoNumero, log, metricas)
	if err != nil {
		s.Close()
		return nil, err
	}

	prepCfg := compras.PreparacionConfig{
		DestinoDefault:      cfg.OC.DestinoDefault,
		FormaPagoDefault:    cfg.OC.FormaPagoDefault,
		PlazoEntregaDefault: cfg.OC.PlazoEntregaDefault,
		IVAInscriptoDefault: cfg.OC.IVAInscriptoDefault,
		Politica:            politica,
		Location:            cfg.OC.Location(),
	}
	clk := clock.System{}

	s.Secuencia = secuencia
	s.Topes = compras.NewTopesUseCase(topes)
	s.PrepararOC = compras.NewPrepararOCUseCase(expedientes, topesClasificacion, secuencia, prepCfg, clk, log, metricas)
	s.Ordenes = compras.NewOrdenCompraUseCase(txRunner, ordenes, expedientes, topesClasificacion, prepCfg, clk, log, metricas)

	pdfGenerator := infrapdf.NewMarotoOCGenerator(cfg.OC.DirectorioSalida, infrapdf.Encabezado{
		Organismo: cfg.OC.Organismo,
		CUIT:      cfg.OC.CUIT,
		Ciudad:    cfg.OC.Ciudad,
	})
	s.Documentos = compras.NewDocumentosUseCase(s.Ordenes, pdfGenerator, excel.NewExporter(cfg.OC.DirectorioSalida, clk))
	return s, nil
}
