package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"game_wheel/internal/config"
	"game_wheel/internal/wheel"
)

const (
	wheelConfigEnvName = "WHEEL_CONFIG"
	defaultWheelConfig = "wheel.yaml"

	defaultHistorySize = 50
)

type wheelFile struct {
	Spin struct {
		Duration      time.Duration `yaml:"duration"`
		ExtraSpins    int           `yaml:"extra_spins"`
		PointerAngle  *float64      `yaml:"pointer_angle"`
		FrameInterval time.Duration `yaml:"frame_interval"`
	} `yaml:"spin"`
	Defaults struct {
		Coefficient     *float64 `yaml:"coefficient"`
		ZeroVotesWeight *float64 `yaml:"zero_votes_weight"`
	} `yaml:"defaults"`
	History struct {
		Size int `yaml:"size"`
	} `yaml:"history"`
}

type wheelConfig struct {
	spinDuration    time.Duration
	extraSpins      int
	pointerAngle    float64
	frameInterval   time.Duration
	coefficient     float64
	zeroVotesWeight float64
	historySize     int
}

// WheelConfigPath - путь к YAML с константами колеса
func WheelConfigPath() string {
	if path := os.Getenv(wheelConfigEnvName); len(path) != 0 {
		return path
	}
	return defaultWheelConfig
}

// NewWheelConfigFromYAML читает константы анимации и значения весов по умолчанию.
// Если файла нет, используются встроенные значения.
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	cfg := &wheelConfig{
		spinDuration:    wheel.DefaultSpinDuration,
		extraSpins:      wheel.DefaultExtraSpins,
		pointerAngle:    wheel.DefaultPointerAngle,
		frameInterval:   wheel.DefaultFrameInterval,
		coefficient:     wheel.DefaultCoefficient,
		zeroVotesWeight: wheel.DefaultZeroVoteWeight,
		historySize:     defaultHistorySize,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read wheel config: %w", err)
	}

	var f wheelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse wheel config: %w", err)
	}

	if f.Spin.Duration != 0 {
		cfg.spinDuration = f.Spin.Duration
	}
	if f.Spin.ExtraSpins != 0 {
		cfg.extraSpins = f.Spin.ExtraSpins
	}
	if f.Spin.PointerAngle != nil {
		cfg.pointerAngle = *f.Spin.PointerAngle
	}
	if f.Spin.FrameInterval != 0 {
		cfg.frameInterval = f.Spin.FrameInterval
	}
	if f.Defaults.Coefficient != nil {
		cfg.coefficient = *f.Defaults.Coefficient
	}
	if f.Defaults.ZeroVotesWeight != nil {
		cfg.zeroVotesWeight = *f.Defaults.ZeroVotesWeight
	}
	if f.History.Size != 0 {
		cfg.historySize = f.History.Size
	}

	if cfg.spinDuration < 0 || cfg.extraSpins < 0 || cfg.frameInterval < 0 || cfg.historySize < 0 {
		return nil, errors.New("wheel config: negative values are not allowed")
	}
	params := wheel.Params{Coefficient: cfg.coefficient, ZeroVoteWeight: cfg.zeroVotesWeight}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("wheel config: %w", err)
	}

	return cfg, nil
}

func (cfg *wheelConfig) SpinDuration() time.Duration {
	return cfg.spinDuration
}

func (cfg *wheelConfig) ExtraSpins() int {
	return cfg.extraSpins
}

func (cfg *wheelConfig) PointerAngle() float64 {
	return cfg.pointerAngle
}

func (cfg *wheelConfig) FrameInterval() time.Duration {
	return cfg.frameInterval
}

func (cfg *wheelConfig) DefaultCoefficient() float64 {
	return cfg.coefficient
}

func (cfg *wheelConfig) DefaultZeroVotesWeight() float64 {
	return cfg.zeroVotesWeight
}

func (cfg *wheelConfig) HistorySize() int {
	return cfg.historySize
}
