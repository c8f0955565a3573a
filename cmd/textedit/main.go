package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/textedit/internal/cli"
	"github.com/zoro11031/textedit/pkg/version"
)

var (
	configPath  string
	logPath     string
	initialFile string
)

var rootCmd = &cobra.Command{
	Use:   "textedit",
	Short: "Minimal interactive text file editor",
	Long: `A minimal editor for a single text file.

Read a file, overwrite it or append to it from an interactive menu or
with one-shot commands. Every operation is recorded in an append-only
log (file_history.txt in the working directory by default).

Run without arguments to launch the interactive menu.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runInteractiveMenu,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu interface for editing a file.`,
	RunE:  runInteractiveMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default ~/.textedit.conf)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "Operation log file (overrides LOG_FILE)")
	rootCmd.Flags().StringVarP(&initialFile, "file", "f", "", "File to open before showing the menu")
	menuCmd.Flags().StringVarP(&initialFile, "file", "f", "", "File to open before showing the menu")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

// newContext builds the shared context from the persistent flags
func newContext() (*cli.Context, error) {
	ctx, err := cli.NewContext(cli.Options{ConfigPath: configPath, LogPath: logPath})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context: %w", err)
	}
	return ctx, nil
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	menu := cli.NewMenu(ctx)
	menu.SetInitialPath(initialFile)
	return menu.Show()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
