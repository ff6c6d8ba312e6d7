package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/winnow/internal/app"
	"github.com/zhubert/winnow/internal/config"
	"github.com/zhubert/winnow/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	demoItems             int
	demoSeed              int64
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "winnow",
	Short: "TUI for browsing huge transcripts through a small window",
	Long: `Winnow renders a transcript of tens of thousands of items through a
terminal-sized window. Only the visible items (plus a small overscan)
are ever rendered; their measured heights feed a sparse index that maps
scroll positions back to items in logarithmic time.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().IntVar(&demoItems, "items", 0, "Transcript size (overrides the configured value)")
	rootCmd.Flags().Int64Var(&demoSeed, "seed", 0, "Transcript seed (overrides the configured value)")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("winnow %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("winnow %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if demoItems > 0 {
		cfg.DemoItems = demoItems
	}
	if demoSeed != 0 {
		cfg.DemoSeed = demoSeed
	}

	defer logger.Close()

	m := app.New(cfg, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
