package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var userLocation string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Управление пользователями",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список пользователей со счетчиками заявок",
	RunE: func(cmd *cobra.Command, _ []string) error {
		overview, err := api.Users(cmd.Context())
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Printf("%-20s %-20s %-8s %-10s %s\n", "ИМЯ", "ГОРОД", "PIN", "ЗАЯВКИ", "ПОСЛЕДНИЙ ВХОД")
		for _, u := range overview.Users {
			pin := color.RedString("нет")
			if u.PinSet {
				pin = color.GreenString("да")
			}
			fmt.Printf("%-20s %-20s %-8s %-10d %s\n",
				u.Name, u.Location, pin, u.TotalApplications, formatMillis(u.LastLogin))
		}
		fmt.Println()
		fmt.Printf("Всего заявок: %d (без владельца: %d)\n",
			overview.TotalApplications, overview.UnassignedApplications)
		return nil
	},
}

var usersSetCmd = &cobra.Command{
	Use:   "set <имя>",
	Short: "Создать пользователя или обновить существующего",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		fmt.Print("PIN (пусто — не менять): ")
		pin, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения PIN: %w", err)
		}
		fmt.Println()

		profile, err := api.SetUser(cmd.Context(), name, userLocation, string(pin))
		if err != nil {
			return err
		}

		color.Green("✓ Пользователь %s сохранен", profile.Name)
		if len(pin) > 0 {
			fmt.Println("Новый PIN назначен, прежний токен отозван")
		}
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <имя>",
	Short: "Удалить пользователя вместе с его заявками",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.DeleteUser(cmd.Context(), args[0]); err != nil {
			return err
		}
		color.Green("✓ Пользователь %s удален", args[0])
		return nil
	},
}

func formatMillis(ms *int64) string {
	if ms == nil {
		return "-"
	}
	return time.UnixMilli(*ms).Format("2006-01-02 15:04")
}

func init() {
	usersSetCmd.Flags().StringVarP(&userLocation, "location", "l", "", "местоположение пользователя")

	usersCmd.AddCommand(usersListCmd, usersSetCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
