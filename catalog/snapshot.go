package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kroogliy/maitsevcatering-sub000/models"
)

const snapshotKey = "catalog:snapshot"

// Snapshot is the durable form of a fetched catalog: the raw payload plus
// its fetch time, so staleness survives restarts.
type Snapshot struct {
	Payload   *models.RawCatalogPayload `json:"payload"`
	FetchedAt time.Time                 `json:"fetchedAt"`
}

// SnapshotStore persists the latest catalog snapshot. Load returns
// (nil, nil) when no snapshot exists.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Delete(ctx context.Context) error
}

type redisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore keeps the snapshot under a single Redis key. There
// is only one catalog resource, so no key scheme is needed.
func NewRedisSnapshotStore(client *redis.Client) SnapshotStore {
	return &redisSnapshotStore{client: client}
}

func (s *redisSnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	data, err := s.client.Get(ctx, snapshotKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *redisSnapshotStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey, data, 0).Err()
}

func (s *redisSnapshotStore) Delete(ctx context.Context) error {
	return s.client.Del(ctx, snapshotKey).Err()
}
