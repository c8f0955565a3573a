package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoro11031/textedit/internal/cli"
)

var (
	writeForce    bool
	appendNewline bool
)

var readCmd = &cobra.Command{
	Use:   "read FILE",
	Short: "Print the contents of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		return cli.RunRead(ctx, args[0])
	},
}

var writeCmd = &cobra.Command{
	Use:   "write FILE TEXT...",
	Short: "Replace the contents of a file",
	Long: `Replace the contents of FILE with TEXT (words are joined by spaces).

The old content is deleted. You are asked to confirm unless --force is set;
without a terminal the overwrite is declined.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		return cli.RunWrite(ctx, args[0], strings.Join(args[1:], " "), writeForce)
	},
}

var appendCmd = &cobra.Command{
	Use:   "append FILE TEXT...",
	Short: "Add text at the end of a file",
	Long:  `Add TEXT (words are joined by spaces) at the end of FILE.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		return cli.RunAppend(ctx, args[0], strings.Join(args[1:], " "), appendNewline)
	},
}

func init() {
	writeCmd.Flags().BoolVar(&writeForce, "force", false, "Overwrite without asking for confirmation")
	appendCmd.Flags().BoolVarP(&appendNewline, "newline", "n", false, "Start the added text on a new line")

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(appendCmd)
}
