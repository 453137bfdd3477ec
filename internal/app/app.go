package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/analyzers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/classifiers"
	internalhttp "github.com/Bryant-Yang/uwsgi-sloth/internal/http"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/parsers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/reports"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/configs"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/loggers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/stores"
)

// App holds all application dependencies and runs one analysis end to end.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	analysisService analyzers.AnalysisService
	renderer        reports.Renderer
	reportStore     stores.ReportStore

	metricsServer *http.Server
	stdout        io.Writer
}

// New creates and initializes a new App instance. urlRuleSources are the
// regex lines from the URL rules file, already read by the caller; a source
// that does not compile fails construction here, before any log line is
// touched.
func New(config *configs.Config, urlRuleSources []string) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "uwsgi-sloth").
		Logger()

	classifier, err := classifiers.New(urlRuleSources)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize url classifier: %w", err)
	}

	parser := parsers.New(config.Analyze.AllowedMethods, config.Analyze.AllowedStatuses)
	analysisService := analyzers.NewAnalysisService(parser, classifier, config.Analyze, config.Report)

	renderer, err := reports.ForFormat(config.Report.Format)
	if err != nil {
		return nil, err
	}

	application := &App{
		config:          config,
		appLogger:       appLogger,
		analysisService: analysisService,
		renderer:        renderer,
		reportStore:     stores.NewReportStore(),
		stdout:          os.Stdout,
	}

	if config.Metrics.ListenAddr != "" {
		httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
		application.metricsServer = &http.Server{
			Addr:              config.Metrics.ListenAddr,
			Handler:           internalhttp.NewRouter(httpLogger),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return application, nil
}

// Run analyzes the input stream and writes the rendered report to outputPath,
// or to stdout when outputPath is empty. source names where the lines came
// from (a file path, or "stdin") for the report header and logs.
func (app *App) Run(ctx context.Context, input io.Reader, source, outputPath string) error {
	app.startMetricsListener()
	defer app.stopMetricsListener()

	ctx = app.appLogger.WithContext(ctx)

	report, err := app.analysisService.Analyze(ctx, input, source)
	if err != nil {
		return err
	}

	// Render into a buffer first so a failed render never clobbers an
	// existing report file or emits half a page to stdout.
	var rendered bytes.Buffer
	if err := app.renderer.Render(&rendered, report); err != nil {
		return err
	}

	if outputPath == "" {
		if _, err := app.stdout.Write(rendered.Bytes()); err != nil {
			return fmt.Errorf("failed to write report to stdout: %w", err)
		}
		return nil
	}

	if err := app.reportStore.Save(ctx, outputPath, &rendered); err != nil {
		return err
	}

	app.appLogger.Info().
		Str(loggers.FieldReportID, report.Meta.ReportID).
		Str(loggers.FieldFormat, app.config.Report.Format).
		Str(loggers.FieldOutput, outputPath).
		Msg("report written")
	return nil
}

// startMetricsListener brings up the optional diagnostics listener. Listener
// failures are logged, not fatal: losing /metrics must not kill an analysis
// that may be hours into a large log.
func (app *App) startMetricsListener() {
	if app.metricsServer == nil {
		return
	}

	app.appLogger.Info().
		Msgf("Starting diagnostics listener on %s", app.metricsServer.Addr)

	go func() {
		if err := app.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.appLogger.Error().Err(err).Msg("diagnostics listener failed")
		}
	}()
}

func (app *App) stopMetricsListener() {
	if app.metricsServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.metricsServer.Shutdown(ctx); err != nil {
		app.appLogger.Error().Err(err).Msg("diagnostics listener shutdown failed")
	}
}
