package cli

import (
	"fmt"
	"os"

	"github.com/Quincunx271/meta-dds/internal/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "meta-dds",
	Short: "Extend dds packages with CMake-built dependencies",
	Long: `meta-dds loads and validates meta_package.json5 manifests, which extend a
plain dds package with meta_dds dependency lists and passthrough build
configuration for dependencies that dds cannot build itself.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(logLevel); err != nil {
			return fmt.Errorf("setting log level: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
