package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
	CORSOrigins() []string
}

type PGConfig interface {
	DSN() string
	MaxConns() int32
	ConnectTimeout() time.Duration
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type ModeratorConfig interface {
	PasswordHash() string
}

// RedisConfig - история раундов. Если адрес пустой, история хранится в памяти.
type RedisConfig interface {
	Address() string
	Password() string
	DB() int
}

type LogConfig interface {
	Level() string
}

type WheelConfig interface {
	SpinDuration() time.Duration
	ExtraSpins() int
	PointerAngle() float64
	FrameInterval() time.Duration
	DefaultCoefficient() float64
	DefaultZeroVotesWeight() float64
	HistorySize() int
}
