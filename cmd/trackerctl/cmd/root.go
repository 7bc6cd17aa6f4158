package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"jobtracker/internal/app/client"
	"jobtracker/internal/app/client/config"
	"jobtracker/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	api       *client.Client
	serverURL string
	token     string
)

var rootCmd = &cobra.Command{
	Use:   "trackerctl",
	Short: "trackerctl - админский клиент трекера заявок",
	Long: `trackerctl управляет пользователями и журналом событий
трекера откликов на вакансии через его админский API.

Адрес сервера и админский токен берутся из окружения
(TRACKER_SERVER, ADMIN_TOKEN) или из флагов командной строки.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	// Флаги командной строки важнее окружения
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if token != "" {
		cfg.AdminToken = token
	}

	log = logger.New(cfg.Env)
	api = client.New(cfg, log)
	return nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL сервера трекера")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "админский токен")
}
