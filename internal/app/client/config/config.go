package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerURL = "http://localhost:8000"
	defaultEnv       = "local"
	defaultLogLevel  = "info"
)

type Config struct {
	Env        string `mapstructure:"app_env"`
	ServerURL  string `mapstructure:"tracker_server"`
	AdminToken string `mapstructure:"admin_token"`
	LogLevel   string `mapstructure:"log_level"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("TRACKER_SERVER", defaultServerURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)

	return &Config{
		Env:        viper.GetString("app_env"),
		ServerURL:  viper.GetString("tracker_server"),
		AdminToken: viper.GetString("admin_token"),
		LogLevel:   viper.GetString("log_level"),
	}
}
