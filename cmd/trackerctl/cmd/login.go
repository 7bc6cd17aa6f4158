package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <имя>",
	Short: "Проверить вход пользователя",
	Long: `Выполняет вход от имени пользователя и печатает выданный токен.
Удобно, чтобы проверить только что назначенный PIN.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("PIN: ")
		pin, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения PIN: %w", err)
		}
		fmt.Println()

		profile, err := api.Login(cmd.Context(), args[0], string(pin), "")
		if err != nil {
			return err
		}

		color.Green("✓ Вход выполнен")
		fmt.Printf("Токен: %s\n", profile.Token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
