package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/shenikar/igloo_sync/internal/service"
)

// Фиксированные ключи сохраняемого состояния
const (
	KeyFamily  = "igloo_family"
	KeyReports = "igloo_reports"
	KeyPalette = "igloo_palette"
)

const cacheTTL = 5 * time.Minute

// StateRepository хранит состояние одного инстанса в Postgres с кешем в Redis.
// Все ключи изолированы по ownerID, так как инстансы делят одну базу.
type StateRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	ownerID     string
}

func NewStateRepository(db *pgxpool.Pool, redisClient *redis.Client, ownerID string) service.StateRepository {
	return &StateRepository{
		db:          db,
		redisClient: redisClient,
		ownerID:     ownerID,
	}
}

// LoadGroupState возвращает сохраненное состояние семьи или nil, если его нет
func (r *StateRepository) LoadGroupState(ctx context.Context) (*models.GroupState, error) {
	state := &models.GroupState{}
	found, err := r.loadValue(ctx, KeyFamily, state)
	if err != nil || !found {
		return nil, err
	}
	return state, nil
}

// SaveGroupState сохраняет состояние семьи и обновляет кеш
func (r *StateRepository) SaveGroupState(ctx context.Context, state *models.GroupState) error {
	if err := r.saveValue(ctx, KeyFamily, state); err != nil {
		return err
	}
	return r.SetGroupStateCache(ctx, state)
}

// LoadReports возвращает сохраненную ленту активности (новые сверху)
func (r *StateRepository) LoadReports(ctx context.Context) ([]models.ActivityReport, error) {
	var reports []models.ActivityReport
	if _, err := r.loadValue(ctx, KeyReports, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// SaveReports сохраняет ленту активности
func (r *StateRepository) SaveReports(ctx context.Context, reports []models.ActivityReport) error {
	if reports == nil {
		reports = []models.ActivityReport{}
	}
	return r.saveValue(ctx, KeyReports, reports)
}

// LoadPalette возвращает сохраненную палитру как есть
func (r *StateRepository) LoadPalette(ctx context.Context) (json.RawMessage, error) {
	var palette json.RawMessage
	found, err := r.loadValue(ctx, KeyPalette, &palette)
	if err != nil || !found {
		return nil, err
	}
	return palette, nil
}

// SavePalette сохраняет палитру, не интерпретируя ее
func (r *StateRepository) SavePalette(ctx context.Context, palette json.RawMessage) error {
	return r.saveValue(ctx, KeyPalette, palette)
}

// SaveSighting сохраняет запись о принятой позиции участника
func (r *StateRepository) SaveSighting(ctx context.Context, sighting *models.Sighting) error {
	query := `
		INSERT INTO member_sightings (owner_id, member_id, location, source)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5) RETURNING id, seen_at;
	`
	err := r.db.QueryRow(ctx, query,
		r.ownerID,
		sighting.MemberID,
		sighting.Longitude,
		sighting.Latitude,
		sighting.Source,
	).Scan(&sighting.ID, &sighting.SeenAt)
	if err != nil {
		return fmt.Errorf("failed to save sighting: %w", err)
	}
	return nil
}

// CountActiveMembers возвращает число участников, чья позиция принималась за последние minutes минут
func (r *StateRepository) CountActiveMembers(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT member_id)
		FROM member_sightings
		WHERE owner_id = $1 AND seen_at >= NOW() - ($2 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, r.ownerID, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count active members: %w", err)
	}
	return count, nil
}

// GetGroupStateFromCache пытается получить состояние семьи из Redis
func (r *StateRepository) GetGroupStateFromCache(ctx context.Context) (*models.GroupState, error) {
	val, err := r.redisClient.Get(ctx, r.cacheKey(KeyFamily)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group state from cache: %w", err)
	}

	state := &models.GroupState{}
	if err := json.Unmarshal(val, state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group state from cache: %w", err)
	}
	return state, nil
}

// SetGroupStateCache сохраняет состояние семьи в Redis
func (r *StateRepository) SetGroupStateCache(ctx context.Context, state *models.GroupState) error {
	val, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal group state for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, r.cacheKey(KeyFamily), val, cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set group state in cache: %w", err)
	}
	return nil
}

// InvalidateGroupStateCache удаляет состояние семьи из кеша
func (r *StateRepository) InvalidateGroupStateCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, r.cacheKey(KeyFamily)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate group state cache: %w", err)
	}
	return nil
}

func (r *StateRepository) cacheKey(key string) string {
	return fmt.Sprintf("state:%s:%s", r.ownerID, key)
}

func (r *StateRepository) loadValue(ctx context.Context, key string, dst any) (bool, error) {
	query := `SELECT value FROM app_state WHERE owner_id = $1 AND key = $2;`

	var raw []byte
	if err := r.db.QueryRow(ctx, query, r.ownerID, key).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *StateRepository) saveValue(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	query := `
		INSERT INTO app_state (owner_id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, r.ownerID, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
