package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const defaultRedisSnapshotPrefix = "football-hub:snapshot:"

type RedisSnapshotConfig struct {
	KeyPrefix string
	// Retention is the redis key TTL; 0 keeps keys forever.
	Retention time.Duration
}

// RedisSnapshotStore shares snapshots between replicas.
type RedisSnapshotStore struct {
	client *redis.Client
	cfg    RedisSnapshotConfig
}

type redisSnapshotRecord struct {
	Payload     []byte    `json:"payload"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// NewRedisSnapshotStore connects using a redis:// URL and verifies the connection.
func NewRedisSnapshotStore(ctx context.Context, rawURL string, cfg RedisSnapshotConfig) (*RedisSnapshotStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisSnapshotStoreWithClient(client, cfg), nil
}

func NewRedisSnapshotStoreWithClient(client *redis.Client, cfg RedisSnapshotConfig) *RedisSnapshotStore {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultRedisSnapshotPrefix
	}
	return &RedisSnapshotStore{client: client, cfg: cfg}
}

func (s *RedisSnapshotStore) Load(ctx context.Context, key string) (Snapshot, bool, error) {
	raw, err := s.client.Get(ctx, s.cfg.KeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("redis get snapshot key=%s: %w", key, err)
	}

	var record redisSnapshotRecord
	if err := sonic.Unmarshal(raw, &record); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode snapshot key=%s: %w", key, err)
	}

	return Snapshot{Payload: record.Payload, RefreshedAt: record.RefreshedAt}, true, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, key string, snapshot Snapshot) error {
	raw, err := sonic.Marshal(redisSnapshotRecord{
		Payload:     snapshot.Payload,
		RefreshedAt: snapshot.RefreshedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode snapshot key=%s: %w", key, err)
	}

	if err := s.client.Set(ctx, s.cfg.KeyPrefix+key, raw, s.cfg.Retention).Err(); err != nil {
		return fmt.Errorf("redis set snapshot key=%s: %w", key, err)
	}
	return nil
}

func (s *RedisSnapshotStore) Close() error {
	return s.client.Close()
}
