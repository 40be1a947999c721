package history_repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"game_wheel/internal/model"
	"game_wheel/internal/repository"
)

// DefaultKey - список в Redis, голова - последний раунд
const DefaultKey = "wheel:history"

type redisRepo struct {
	client *redis.Client
	key    string
	size   int
}

// NewRedisHistoryRepository - история в Redis-списке, хранится не больше size записей
func NewRedisHistoryRepository(client *redis.Client, key string, size int) repository.HistoryRepository {
	if key == "" {
		key = DefaultKey
	}
	return &redisRepo{
		client: client,
		key:    key,
		size:   size,
	}
}

// Append - LPUSH + LTRIM одной транзакцией
func (r *redisRepo) Append(ctx context.Context, record model.RoundRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, r.key, data)
		if r.size > 0 {
			pipe.LTrim(ctx, r.key, 0, int64(r.size-1))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append round: %w", err)
	}

	return nil
}

// Recent - последние limit раундов, новые первыми
func (r *redisRepo) Recent(ctx context.Context, limit int) ([]model.RoundRecord, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	values, err := r.client.LRange(ctx, r.key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	records := make([]model.RoundRecord, 0, len(values))
	for _, v := range values {
		var rec model.RoundRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("corrupted history entry: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
