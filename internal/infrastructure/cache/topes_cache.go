// Package cache guarda en Redis la tabla de topes de contratación.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
	"github.com/jhoicas/Expedientes-api/pkg/logger"
)

// KeyTopes clave de la tabla de topes.
const KeyTopes = "expedientes:config_topes"

// ErrMiss la clave no está en la caché.
var ErrMiss = errors.New("cache miss")

// Store operaciones mínimas de clave/valor que usa la caché.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisStore implementa Store sobre go-redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore construye el store. Llamar Ping antes de usarlo para validar la conexión.
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Ping verifica la conexión.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

var _ repository.TopeRepository = (*TopesCache)(nil)

// TopesCache decora un TopeRepository con lectura a través de la caché.
// Un fallo de Redis nunca rompe la lectura: se registra y se va a la base.
type TopesCache struct {
	next  repository.TopeRepository
	store Store
	ttl   time.Duration
	log   *logger.Logger
}

// NewTopesCache construye el decorador. ttl <= 0 usa 5 minutos.
func NewTopesCache(next repository.TopeRepository, store Store, ttl time.Duration, log *logger.Logger) *TopesCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TopesCache{next: next, store: store, ttl: ttl, log: log.WithComponent("topes_cache")}
}

type topeJSON struct {
	ID               int64           `json:"id"`
	TipoContratacion string          `json:"tipo_contratacion"`
	MontoMaximo      decimal.Decimal `json:"monto_maximo"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// List devuelve los topes desde la caché o, si no están, desde el repositorio.
func (c *TopesCache) List(ctx context.Context) ([]*entity.Tope, error) {
	b, err := c.store.Get(ctx, KeyTopes)
	switch {
	case err == nil:
		var items []topeJSON
		if err := json.Unmarshal(b, &items); err == nil {
			out := make([]*entity.Tope, 0, len(items))
			for _, it := range items {
				out = append(out, &entity.Tope{ID: it.ID, TipoContratacion: it.TipoContratacion, MontoMaximo: it.MontoMaximo, UpdatedAt: it.UpdatedAt})
			}
			return out, nil
		}
		c.log.Warn().Msg("contenido de caché inválido, se descarta")
	case !errors.Is(err, ErrMiss):
		c.log.Warn().Err(err).Msg("caché de topes no disponible")
	}

	topes, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}
	c.guardar(ctx, topes)
	return topes, nil
}

// UpdateMontoMaximo actualiza en el repositorio e invalida la caché.
func (c *TopesCache) UpdateMontoMaximo(ctx context.Context, tipoContratacion string, monto decimal.Decimal) (*entity.Tope, error) {
	t, err := c.next.UpdateMontoMaximo(ctx, tipoContratacion, monto)
	if err != nil {
		return nil, err
	}
	if err := c.store.Del(ctx, KeyTopes); err != nil {
		c.log.Warn().Err(err).Msg("no se pudo invalidar la caché de topes")
	}
	return t, nil
}

// SinCache devuelve una vista del repositorio que siempre lee la base y refresca la caché
// con lo leído. La usan las clasificaciones, que no pueden trabajar con topes ya reemplazados
// mientras la caché espera su TTL.
func (c *TopesCache) SinCache() repository.TopeRepository {
	return lecturaDirecta{c: c}
}

type lecturaDirecta struct {
	c *TopesCache
}

func (l lecturaDirecta) List(ctx context.Context) ([]*entity.Tope, error) {
	topes, err := l.c.next.List(ctx)
	if err != nil {
		return nil, err
	}
	l.c.guardar(ctx, topes)
	return topes, nil
}

func (l lecturaDirecta) UpdateMontoMaximo(ctx context.Context, tipoContratacion string, monto decimal.Decimal) (*entity.Tope, error) {
	return l.c.UpdateMontoMaximo(ctx, tipoContratacion, monto)
}

func (c *TopesCache) guardar(ctx context.Context, topes []*entity.Tope) {
	if len(topes) == 0 {
		return
	}
	items := make([]topeJSON, 0, len(topes))
	for _, t := range topes {
		items = append(items, topeJSON{ID: t.ID, TipoContratacion: t.TipoContratacion, MontoMaximo: t.MontoMaximo, UpdatedAt: t.UpdatedAt})
	}
	b, err := json.Marshal(items)
	if err != nil {
		c.log.Warn().Err(err).Msg("serializar topes")
		return
	}
	if err := c.store.Set(ctx, KeyTopes, b, c.ttl); err != nil {
		c.log.Warn().Err(err).Str("key", KeyTopes).Msg("guardar topes en caché")
	}
}
