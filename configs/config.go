package configs

import (
	"fmt"
	"github.com/caarlos0/env/v6"
)

type APIConfig struct {
	App     App
	Server  Server
	Session Session
	DB      DB
	Logger  Logger
}

func LoadAPIConfig() (APIConfig, error) {
	var config APIConfig

	if err := env.Parse(&config); err != nil {
		return APIConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

type DeadlineServiceConfig struct {
	App     App
	Session Session
	DB      DB
	Logger  Logger
}

func LoadDeadlineServiceConfig() (DeadlineServiceConfig, error) {
	var config DeadlineServiceConfig

	if err := env.Parse(&config); err != nil {
		return DeadlineServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
