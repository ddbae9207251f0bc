package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// mirrorSchema tabla de una sola fila con el último snapshot replicado.
const mirrorSchema = `
CREATE TABLE IF NOT EXISTS snapshot_mirror (
	id          smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	version     text        NOT NULL,
	payload     jsonb       NOT NULL,
	updated_at  timestamptz NOT NULL
)`

// PostgresMirror réplica remota best-effort del snapshot: una fila JSONB que
// se sobreescribe en cada push. Nunca es autoritativa; el store local manda.
type PostgresMirror struct {
	pool *pgxpool.Pool
}

// NewPostgresMirror abre el pool, verifica conectividad y asegura el esquema.
func NewPostgresMirror(ctx context.Context, databaseURL string) (*PostgresMirror, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	// La réplica escribe un documento por mutación: pocas conexiones bastan.
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping réplica: %w", err)
	}
	if _, err := pool.Exec(ctx, mirrorSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("asegurar esquema de réplica: %w", err)
	}
	return &PostgresMirror{pool: pool}, nil
}

// Push sobreescribe la fila de réplica con el payload dado.
func (m *PostgresMirror) Push(ctx context.Context, version string, payload []byte) error {
	query := `
		INSERT INTO snapshot_mirror (id, version, payload, updated_at)
		VALUES (1, $1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET version = EXCLUDED.version, payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := m.pool.Exec(ctx, query, version, payload); err != nil {
		return fmt.Errorf("push réplica: %w", err)
	}
	return nil
}

// Close cierra el pool.
func (m *PostgresMirror) Close() {
	m.pool.Close()
}
