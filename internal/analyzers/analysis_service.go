package analyzers

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/aggregators"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/classifiers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/parsers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/configs"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/loggers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/metrics"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/svcerrors"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/ulid"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/streams"
)

// maxLineBytes caps a single log line. Access-log lines are normally a few
// hundred bytes; a line over this limit aborts the run as malformed input.
const maxLineBytes = 1024 * 1024

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze consumes r line by line and returns the finished report.
	// source is recorded in the report metadata; it names where the lines
	// came from (a file path, or "stdin").
	Analyze(ctx context.Context, r io.Reader, source string) (*models.Report, error)
}

type analysisService struct {
	parser     parsers.LineParser
	classifier classifiers.URLClassifier

	minMsecs          int64
	workers           int
	limitGroups       int
	limitURLsPerGroup int
}

func NewAnalysisService(parser parsers.LineParser, classifier classifiers.URLClassifier, analyzeCfg configs.AnalyzeConfig, reportCfg configs.ReportConfig) AnalysisService {
	return &analysisService{
		parser:            parser,
		classifier:        classifier,
		minMsecs:          analyzeCfg.MinMsecs,
		workers:           analyzeCfg.Workers,
		limitGroups:       reportCfg.TopURLGroups,
		limitURLsPerGroup: reportCfg.TopURLsPerGroup,
	}
}

// runCounters tracks how much of the input survived each pipeline stage.
type runCounters struct {
	linesRead      int64
	recordsMatched int64
	belowMin       int64
}

func (s *analysisService) Analyze(ctx context.Context, r io.Reader, source string) (*models.Report, error) {
	logger := loggers.Ctx(ctx)
	start := time.Now()
	reportID := ulid.NewULID()

	logger.Debug().
		Str(loggers.FieldReportID, reportID).
		Str(loggers.FieldSource, source).
		Msg("started analyzing access log")

	if r == nil {
		svcErr := errInputMissing()
		metricRunsCompletedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	agg := aggregators.New(s.classifier)
	counters := &runCounters{}

	mode := modeSequential
	var err error
	if s.workers > 1 {
		mode = modeParallel
		err = s.analyzeParallel(ctx, r, agg, counters)
	} else {
		err = s.analyzeSequential(ctx, r, agg, counters)
	}
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricRunsCompletedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	summary := agg.Finalize(s.limitGroups, s.limitURLsPerGroup)
	elapsed := time.Since(start)

	metricRunsCompletedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRunDurationSeconds.WithLabelValues(mode).Observe(elapsed.Seconds())

	logger.Info().
		Str(loggers.FieldReportID, reportID).
		Str(loggers.FieldSource, source).
		Int64(loggers.FieldLines, counters.linesRead).
		Int64(loggers.FieldRecords, counters.recordsMatched).
		Int(loggers.FieldGroups, summary.GroupsSeen).
		Dur(loggers.FieldDuration, elapsed).
		Msg("finished analyzing access log")

	return &models.Report{
		Meta: models.RunMeta{
			ReportID:       reportID,
			Source:         source,
			GeneratedAt:    start.UTC(),
			Elapsed:        elapsed,
			LinesRead:      counters.linesRead,
			RecordsMatched: counters.recordsMatched,
			BelowMin:       counters.belowMin,
			MinMsecs:       s.minMsecs,
		},
		Summary: summary,
	}, nil
}

// analyzeSequential is the single-goroutine path: every line flows through
// parse, threshold check and accumulation inline.
func (s *analysisService) analyzeSequential(ctx context.Context, r io.Reader, agg *aggregators.Aggregator, counters *runCounters) error {
	scanner := newLineScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return errAnalysisCanceled(err)
		}
		counters.linesRead++
		s.processLine(scanner.Text(), agg, counters)
	}
	if err := scanner.Err(); err != nil {
		return errReadInputFailed(err)
	}
	return nil
}

func (s *analysisService) processLine(line string, agg *aggregators.Aggregator, counters *runCounters) {
	rec := s.parser.Parse(line)
	if rec == nil {
		return
	}
	counters.recordsMatched++
	if rec.RespTimeMS < s.minMsecs {
		counters.belowMin++
		return
	}
	agg.Accumulate(rec)
}

// analyzeParallel fans lines out to one shard per worker and merges the
// shards once the queue drains. Lines are routed by their own content, so
// identical requests land on the same shard; the merged totals are identical
// to a sequential run either way.
func (s *analysisService) analyzeParallel(ctx context.Context, r io.Reader, agg *aggregators.Aggregator, counters *runCounters) error {
	queue := streams.NewPartitionedQueue[string](streamLogLines, s.workers)
	shardSet := newShardSet(s.parser, s.classifier, s.minMsecs, s.workers)
	consumer := streams.NewLineConsumer(queue, shardSet, *loggers.Ctx(ctx))
	consumer.Start(ctx)

	scanner := newLineScanner(r)
	var runErr error
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			runErr = errAnalysisCanceled(err)
			break
		}
		counters.linesRead++
		line := scanner.Text()
		queue.Publish(line, line)
	}
	if runErr == nil {
		if err := scanner.Err(); err != nil {
			runErr = errReadInputFailed(err)
		}
	}

	// Always drain: workers must not leak even when the scan failed.
	queue.Close()
	consumer.Wait()

	if runErr != nil {
		return runErr
	}

	for _, shard := range shardSet.shards {
		agg.Merge(shard.agg)
		counters.recordsMatched += shard.recordsMatched
		counters.belowMin += shard.belowMin
	}
	return nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return scanner
}
