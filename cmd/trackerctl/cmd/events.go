package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var eventsLimit int64

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Журнал событий",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Последние события, новые первыми",
	RunE: func(cmd *cobra.Command, _ []string) error {
		events, err := api.Events(cmd.Context(), eventsLimit)
		if err != nil {
			return err
		}

		for _, e := range events {
			ts := time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04:05")
			line := fmt.Sprintf("%s %-18s %-16s", ts, e.Type, e.Owner)
			if e.ItemID != nil {
				line += fmt.Sprintf(" id=%d", *e.ItemID)
			}
			if e.Count != nil {
				line += fmt.Sprintf(" count=%d", *e.Count)
			}
			if e.IP != "" {
				line += " ip=" + e.IP
			}
			fmt.Println(line)
		}
		fmt.Printf("Всего: %d\n", len(events))
		return nil
	},
}

var eventsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Очистить журнал событий",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := api.ClearEvents(cmd.Context()); err != nil {
			return err
		}
		color.Green("✓ Журнал событий очищен")
		return nil
	},
}

func init() {
	eventsListCmd.Flags().Int64VarP(&eventsLimit, "limit", "n", 0, "сколько событий показать")

	eventsCmd.AddCommand(eventsListCmd, eventsClearCmd)
	rootCmd.AddCommand(eventsCmd)
}
