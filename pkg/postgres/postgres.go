package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/igloo_sync/internal/config"
)

// NewPostgresDB создает пул соединений PostgreSQL под нагрузку синхронизации:
// каждый принятый фикс пишет в member_sightings, изменения семьи пишут в app_state.
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := NewPoolConfig(appCfg)
	if err != nil {
		return nil, err
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}

// NewPoolConfig разбирает DATABASE_URL и применяет лимиты пула из конфигурации.
// Нулевые значения оставляют настройки из строки подключения или умолчания pgx.
func NewPoolConfig(appCfg *config.Config) (*pgxpool.Config, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}

	if appCfg.DBMaxConns > 0 {
		cfgPool.MaxConns = appCfg.DBMaxConns
	}
	if appCfg.DBMinConns > 0 {
		cfgPool.MinConns = min(appCfg.DBMinConns, cfgPool.MaxConns)
	}
	if appCfg.DBMaxConnIdleTime > 0 {
		cfgPool.MaxConnIdleTime = appCfg.DBMaxConnIdleTime
	}

	return cfgPool, nil
}
