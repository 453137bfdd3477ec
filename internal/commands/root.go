package commands

import (
	"fmt"
	"os"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/configs"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	currentConfig *configs.Config

	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:          "uwsgi-sloth",
	Short:        "uwsgi-sloth — ranked slow-request reports from uWSGI access logs",
	Long: `uwsgi-sloth reads a uWSGI access log, groups requests by URL pattern and
produces a report of the slowest endpoints ranked by total response time.
Numeric path segments are collapsed automatically (/users/42/ and /users/7/
count as the same endpoint); a rule file can override the grouping.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configs.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		currentConfig = cfg
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Configuration problems,
// unreadable input and internal failures map to distinct exit codes.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.ExitCode
	}
	return 1
}

// GetConfig returns the effective configuration loaded by the root command.
// It is nil until PersistentPreRunE has run.
func GetConfig() *configs.Config {
	return currentConfig
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML; built-in defaults when omitted)")
}
