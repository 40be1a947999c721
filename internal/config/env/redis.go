package env

import (
	"fmt"
	"os"
	"strconv"

	"game_wheel/internal/config"
)

const (
	redisAddrEnvName     = "REDIS_ADDR"
	redisPasswordEnvName = "REDIS_PASSWORD"
	redisDBEnvName       = "REDIS_DB"
)

type redisConfig struct {
	address  string
	password string
	db       int
}

func NewRedisConfig() (config.RedisConfig, error) {
	db := 0
	if raw := os.Getenv(redisDBEnvName); len(raw) != 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid redis db: %w", err)
		}
		db = parsed
	}

	return &redisConfig{
		address:  os.Getenv(redisAddrEnvName),
		password: os.Getenv(redisPasswordEnvName),
		db:       db,
	}, nil
}

func (cfg *redisConfig) Address() string {
	return cfg.address
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) DB() int {
	return cfg.db
}
