package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/app"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/configs"

	"github.com/spf13/cobra"
)

// sourceStdin names the input in reports and logs when no file is given.
const sourceStdin = "stdin"

// analyzeCmd implements the 'analyze' command, the main entry point: parse,
// group and rank one access log and write the report.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [access-log]",
	Short: "Analyze a uWSGI access log and write the ranked report",
	Long: `Analyze reads the given access log (or stdin when the argument is omitted
or is "-"), keeps requests at or above the minimum response time, groups them
by URL pattern and writes the report to --output or stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	applyAnalyzeFlags(cmd, cfg)
	if err := configs.Validate(cfg); err != nil {
		return err
	}

	var ruleSources []string
	if cfg.Rules.URLFile != "" {
		sources, err := configs.LoadURLRules(cfg.Rules.URLFile)
		if err != nil {
			return err
		}
		ruleSources = sources
	}

	var input io.Reader = cmd.InOrStdin()
	source := sourceStdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open access log: %w", err)
		}
		defer f.Close()
		input = f
		source = args[0]
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	application, err := app.New(cfg, ruleSources)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context(), input, source, outputPath)
}

// applyAnalyzeFlags overlays the flags the user actually set onto the file-
// or default-backed config. Unset flags leave the config values alone, so
// the precedence is flags > config file > defaults.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *configs.Config) {
	flags := cmd.Flags()
	if flags.Changed("min-msecs") {
		cfg.Analyze.MinMsecs, _ = flags.GetInt64("min-msecs")
	}
	if flags.Changed("workers") {
		cfg.Analyze.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("format") {
		cfg.Report.Format, _ = flags.GetString("format")
	}
	if flags.Changed("top-url-groups") {
		cfg.Report.TopURLGroups, _ = flags.GetInt("top-url-groups")
	}
	if flags.Changed("top-urls-per-group") {
		cfg.Report.TopURLsPerGroup, _ = flags.GetInt("top-urls-per-group")
	}
	if flags.Changed("url-file") {
		cfg.Rules.URLFile, _ = flags.GetString("url-file")
	}
	if flags.Changed("metrics-listen") {
		cfg.Metrics.ListenAddr, _ = flags.GetString("metrics-listen")
	}
}

func init() {
	analyzeCmd.Flags().Int64("min-msecs", 0, "ignore requests faster than this many milliseconds")
	analyzeCmd.Flags().Int("workers", 0, "analysis workers; >1 partitions the log and merges the shards")
	analyzeCmd.Flags().String("format", "", "report format: html, json or text")
	analyzeCmd.Flags().StringP("output", "o", "", "write the report to this file instead of stdout")
	analyzeCmd.Flags().String("url-file", "", "URL grouping rule file, one regex per line")
	analyzeCmd.Flags().Int("top-url-groups", 0, "how many URL groups the report keeps")
	analyzeCmd.Flags().Int("top-urls-per-group", 0, "how many exact URLs each group keeps")
	analyzeCmd.Flags().String("metrics-listen", "", "serve /metrics and /healthz on this address while analyzing")

	rootCmd.AddCommand(analyzeCmd)
}
