package util

import (
	"os"
	"strconv"
)

type environment struct {
	redisURL         string
	redisPW          string
	redisDB          string
	persistHandState string
}

// Env exposes process-level settings read from environment variables.
var Env = &environment{
	redisURL:         "REDIS_URL",
	redisPW:          "REDIS_PW",
	redisDB:          "REDIS_DB",
	persistHandState: "PERSIST_HAND_STATE",
}

func (e *environment) GetRedisURL() string {
	url := os.Getenv(e.redisURL)
	if url == "" {
		return "localhost:6379"
	}
	return url
}

func (e *environment) GetRedisPW() string {
	return os.Getenv(e.redisPW)
}

func (e *environment) GetRedisDB() int {
	v := os.Getenv(e.redisDB)
	if v == "" {
		return 0
	}
	db, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return db
}

// ShouldPersistHandState reports whether hand-state snapshots should be
// saved between actions (crash recovery).
func (e *environment) ShouldPersistHandState() bool {
	v := os.Getenv(e.persistHandState)
	return v == "1" || v == "true"
}
