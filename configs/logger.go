package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"meal_voting_system"`
	URL     string `env:"LOGGER_LOKI_URL"`
}
