package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/textedit/internal/cli"
)

var historyTail int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and log locations",
	Long:  `Display the configuration file, the operation log and the last opened file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		cli.ShowStatus(ctx)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the operation log",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		return cli.ShowHistory(ctx, historyTail)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyTail, "tail", "t", 0, "Only print the last N lines")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
}
