package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"game_wheel/internal/config"
)

const (
	dsnName            = "PG_DSN"
	maxConnsName       = "PG_MAX_CONNS"
	connectTimeoutName = "PG_CONNECT_TIMEOUT"

	defaultMaxConns       = 10
	defaultConnectTimeout = 5 * time.Second
)

type pgConfig struct {
	dsn            string
	maxConns       int32
	connectTimeout time.Duration
}

// NewPGConfig - PG_DSN обязателен, размер пула и таймаут подключения можно не задавать
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	cfg := &pgConfig{
		dsn:            dsn,
		maxConns:       defaultMaxConns,
		connectTimeout: defaultConnectTimeout,
	}

	if s := os.Getenv(maxConnsName); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", maxConnsName, s)
		}
		cfg.maxConns = int32(n)
	}

	if s := os.Getenv(connectTimeoutName); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", connectTimeoutName, s)
		}
		cfg.connectTimeout = d
	}

	return cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

func (cfg *pgConfig) MaxConns() int32 {
	return cfg.maxConns
}

func (cfg *pgConfig) ConnectTimeout() time.Duration {
	return cfg.connectTimeout
}
