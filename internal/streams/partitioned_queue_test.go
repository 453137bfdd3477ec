package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedQueue_SameKeySamePartition(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[string]("test", 4)

	queue.Publish("key-a", "first")
	queue.Publish("key-a", "second")

	owner := partitionIndex("key-a", 4)
	for i, ch := range queue.partitions {
		if i == owner {
			assert.Len(t, ch, 2, "both messages should land on the key's partition")
		} else {
			assert.Empty(t, ch)
		}
	}
}

func TestPartitionedQueue_CloseTerminatesDrain(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int]("test", 3)

	queue.Publish("a", 1)
	queue.Publish("b", 2)
	queue.Publish("c", 3)
	queue.Close()

	total := 0
	for _, ch := range queue.partitions {
		for range ch {
			total++
		}
	}
	assert.Equal(t, 3, total)
}

func TestNewPartitionedQueue_AtLeastOnePartition(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[string]("test", 0)

	assert.Equal(t, 1, queue.PartitionCount())
}

func TestPartitionIndex_Stable(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "a", "GET /users/42/", "a very long partition key with spaces"} {
		first := partitionIndex(key, 8)
		assert.Equal(t, first, partitionIndex(key, 8), "key %q should always route to the same partition", key)
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, 8)
	}
}
