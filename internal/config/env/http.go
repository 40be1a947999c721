package env

import (
	"os"
	"strings"

	"game_wheel/internal/config"
)

const (
	httpAddrEnvName    = "HTTP_ADDR"
	corsOriginsEnvName = "CORS_ORIGINS"

	defaultHTTPAddr = ":8000"
)

type httpConfig struct {
	address string
	origins []string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	address := os.Getenv(httpAddrEnvName)
	if len(address) == 0 {
		address = defaultHTTPAddr
	}

	origins := []string{"*"}
	if raw := os.Getenv(corsOriginsEnvName); len(raw) != 0 {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &httpConfig{
		address: address,
		origins: origins,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}

func (cfg *httpConfig) CORSOrigins() []string {
	return cfg.origins
}
