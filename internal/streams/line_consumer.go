package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/loggers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/metrics"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/svcerrors"
)

//go:generate mockgen -source=line_consumer.go -destination=./mocks/line_consumer_mock.go -package=mocks
type LineConsumer interface {
	Start(ctx context.Context)
	Wait()
}

type lineConsumer struct {
	queue     *PartitionedQueue[string]
	processor LineProcessor

	wg sync.WaitGroup

	logger loggers.Logger
}

func NewLineConsumer(queue *PartitionedQueue[string], processor LineProcessor, logger loggers.Logger) LineConsumer {
	return &lineConsumer{
		queue:     queue,
		processor: processor,
		logger:    logger,
	}
}

// Start spawns 1 worker goroutine per partition.
// Each partition is a single-writer lane for line keys routed by the publisher.
func (consumer *lineConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Wait blocks until every partition channel is closed and fully drained.
// Close the queue first, or Wait never returns. Cancellation is the
// publisher's job: workers always finish the lines already queued so that
// accumulated counts stay consistent with the published ones.
func (consumer *lineConsumer) Wait() {
	consumer.wg.Wait()
}

func (consumer *lineConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan string) {
	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Logger().WithContext(ctx)

	for line := range ch {
		consumer.consumeLine(ctx, partitionIndex, line)
	}
}

func (consumer *lineConsumer) consumeLine(ctx context.Context, partitionIndex int, line string) {
	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("line worker panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricLinesConsumedTotal.WithLabelValues(streamLogLines, svcErr.Code).Inc()
		}
	}()

	consumer.processor.Process(ctx, partitionIndex, line)
	metricLinesConsumedTotal.WithLabelValues(streamLogLines, metrics.ValueNoError).Inc()
}
