package streams

import "context"

//go:generate mockgen -source=line_processor.go -destination=./mocks/line_processor_mock.go -package=mocks

// LineProcessor handles one raw log line on the worker goroutine that owns
// partition. Implementations may keep unsynchronized per-partition state:
// the consumer guarantees a partition is only ever touched by its own worker.
type LineProcessor interface {
	Process(ctx context.Context, partition int, line string)
}
