package config

import (
	"log"
	"net"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultDatabaseURI = "postgres://localhost:5432/tracker?sslmode=disable"
	defaultMigrations  = "migrations"
	defaultAdminToken  = "9087700234"
	defaultPINPepper   = "tracker-salt"
	defaultHost        = "0.0.0.0"
	defaultPort        = 8000
)

type Config struct {
	Env    string
	DB     db
	Server server
	Admin  admin
	Auth   auth
	Logger logger
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	Host string `env:"BACKEND_HOST"`
	Port int    `env:"PORT"`
}

type admin struct {
	Token string `env:"ADMIN_TOKEN"`
}

type auth struct {
	PINPepper string `env:"PIN_SALT"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func NewConfig() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("DATABASE_URI", defaultDatabaseURI)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrations)
	viper.SetDefault("ADMIN_TOKEN", defaultAdminToken)
	viper.SetDefault("PIN_SALT", defaultPINPepper)
	viper.SetDefault("BACKEND_HOST", defaultHost)
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("LOG_LEVEL", "info")

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{
			Host: viper.GetString("backend_host"),
			Port: resolvePort(),
		},
		Admin:  admin{Token: viper.GetString("admin_token")},
		Auth:   auth{PINPepper: viper.GetString("pin_salt")},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}

	return &config
}

// resolvePort: PORT имеет приоритет над BACKEND_PORT
func resolvePort() int {
	raw := viper.GetString("port")
	if raw == "" {
		raw = viper.GetString("backend_port")
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 {
		return defaultPort
	}
	return port
}

func (c *Config) RunAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
