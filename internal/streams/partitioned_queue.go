package streams

import (
	"encoding/binary"
	"hash/fnv"
)

// PartitionedQueue fans messages out over a fixed set of channels. Messages
// sharing a partition key always land on the same channel, so a consumer
// running one goroutine per partition never processes two messages for the
// same key concurrently.
type PartitionedQueue[T any] struct {
	streamID   string
	partitions []chan T
}

const defaultBuffer = 1024

// NewPartitionedQueue creates a queue with numPartitions buffered lanes. The
// streamID labels the queue's publish metric so co-resident queues stay
// distinguishable.
func NewPartitionedQueue[T any](streamID string, numPartitions int) *PartitionedQueue[T] {
	if numPartitions < 1 {
		numPartitions = 1
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, defaultBuffer)
	}
	return &PartitionedQueue[T]{streamID: streamID, partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish routes msg to the partition owning partitionKey, blocking while
// that partition's buffer is full.
func (queue *PartitionedQueue[T]) Publish(partitionKey string, msg T) {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	queue.partitions[idx] <- msg
	metricMessagesPublishedTotal.WithLabelValues(queue.streamID).Inc()
}

// Close closes every partition channel. Publishing after Close panics;
// consumers draining with range terminate once their lane empties.
func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
