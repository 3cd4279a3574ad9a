package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/muchiri-dev/dermacare_backend/cmd/http"
	systemcmd "github.com/muchiri-dev/dermacare_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "dermacare",
	Short: "DermaCare clinic management backend.",
	Long: `DermaCare is the backend for a dermatology clinic: patient records,
doctor schedules, appointment booking, the service catalog, and the
clinic's public-facing contact and newsletter channels.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
