package game

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// RedisHandStateTracker stores serialized hand state in redis, keyed by
// game code. State survives process restarts, enabling crash recovery of
// in-progress hands.
type RedisHandStateTracker struct {
	rdclient *redis.Client
}

func NewRedisHandStateTracker(redisURL string, redisPW string, redisDB int) *RedisHandStateTracker {
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisHandStateTracker{rdclient: client}
}

func handStateKey(gameCode string) string {
	return "handstate:" + gameCode
}

func (r *RedisHandStateTracker) Load(gameCode string) (*HandStateRecord, error) {
	data, err := r.rdclient.Get(context.Background(), handStateKey(gameCode)).Result()
	if err == redis.Nil {
		return nil, HandStateNotFoundError{GameCode: gameCode}
	} else if err != nil {
		return nil, errors.Wrapf(err, "loading hand state for game %s", gameCode)
	}
	var rec HandStateRecord
	if err := persistJSON.Unmarshal([]byte(data), &rec); err != nil {
		return nil, errors.Wrapf(err, "unmarshalling hand state for game %s", gameCode)
	}
	return &rec, nil
}

func (r *RedisHandStateTracker) Save(gameCode string, record *HandStateRecord) error {
	data, err := persistJSON.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "marshalling hand state for game %s", gameCode)
	}
	err = r.rdclient.Set(context.Background(), handStateKey(gameCode), data, 0).Err()
	if err != nil {
		return errors.Wrapf(err, "saving hand state for game %s", gameCode)
	}
	return nil
}

func (r *RedisHandStateTracker) Remove(gameCode string) error {
	err := r.rdclient.Del(context.Background(), handStateKey(gameCode)).Err()
	if err != nil {
		return errors.Wrapf(err, "removing hand state for game %s", gameCode)
	}
	return nil
}
