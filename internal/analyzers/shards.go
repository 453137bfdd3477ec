package analyzers

import (
	"context"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/aggregators"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/classifiers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/parsers"
)

// shardSet gives every queue partition its own accumulation lane. The stream
// consumer guarantees one worker per partition, so shard state needs no
// locking; totals are read only after the consumer's Wait returns.
type shardSet struct {
	shards []*shard
}

type shard struct {
	parser   parsers.LineParser
	agg      *aggregators.Aggregator
	minMsecs int64

	recordsMatched int64
	belowMin       int64
}

func newShardSet(parser parsers.LineParser, classifier classifiers.URLClassifier, minMsecs int64, workers int) *shardSet {
	shards := make([]*shard, workers)
	for i := range shards {
		shards[i] = &shard{
			parser:   parser,
			agg:      aggregators.New(classifier),
			minMsecs: minMsecs,
		}
	}
	return &shardSet{shards: shards}
}

// Process implements streams.LineProcessor.
func (s *shardSet) Process(_ context.Context, partition int, line string) {
	s.shards[partition].process(line)
}

func (s *shard) process(line string) {
	rec := s.parser.Parse(line)
	if rec == nil {
		return
	}
	s.recordsMatched++
	if rec.RespTimeMS < s.minMsecs {
		s.belowMin++
		return
	}
	s.agg.Accumulate(rec)
}
