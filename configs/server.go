package configs

type Server struct {
	Address string `env:"SERVER_ADDRESS" envDefault:":8080"`
}
