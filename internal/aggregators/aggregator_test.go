package aggregators

import (
	"strings"
	"testing"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/classifiers"
	classifiermocks "github.com/Bryant-Yang/uwsgi-sloth/internal/classifiers/mocks"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	classifier, err := classifiers.New(nil)
	require.NoError(t, err)
	return New(classifier)
}

func record(method, url string, respTimeMS int64) *models.RequestRecord {
	urlPath := url
	if i := strings.IndexByte(url, '?'); i >= 0 {
		urlPath = url[:i]
	}
	return &models.RequestRecord{
		Method:     method,
		URL:        url,
		URLPath:    urlPath,
		RespTimeMS: respTimeMS,
		Status:     "200",
	}
}

func TestAggregator_Accumulate_GroupsByMethodAndPattern(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t)

	agg.Accumulate(record("GET", "/users/42/", 100))
	agg.Accumulate(record("GET", "/users/7/", 300))
	agg.Accumulate(record("POST", "/users/42/", 50))

	summary := agg.Finalize(0, 0)

	require.Len(t, summary.Groups, 2)
	assert.Equal(t, int64(3), summary.TotalRequests)
	assert.Equal(t, int64(450), summary.TotalTimeMS)

	get := summary.Groups[0]
	assert.Equal(t, "GET", get.Method)
	assert.Equal(t, `/users/(\d+)/`, get.Pattern)
	assert.Equal(t, int64(2), get.Count)
	assert.Equal(t, int64(400), get.TotalTimeMS)
	assert.Equal(t, 200.0, get.AvgTimeMS)

	post := summary.Groups[1]
	assert.Equal(t, "POST", post.Method)
	assert.Equal(t, int64(1), post.Count)
}

func TestAggregator_Accumulate_ClassifiesURLPathNotURL(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockClassifier := classifiermocks.NewMockURLClassifier(ctrl)
	mockClassifier.EXPECT().Classify("/search/").Return("/search/").Times(2)

	agg := New(mockClassifier)

	// Same endpoint, different query strings: one group, two distinct URLs.
	agg.Accumulate(record("GET", "/search/?q=a", 10))
	agg.Accumulate(record("GET", "/search/?q=b", 20))

	summary := agg.Finalize(0, 0)

	require.Len(t, summary.Groups, 1)
	group := summary.Groups[0]
	assert.Equal(t, int64(2), group.Count)
	require.Len(t, group.URLs, 2)
	assert.Equal(t, "/search/?q=b", group.URLs[0].URL)
	assert.Equal(t, "/search/?q=a", group.URLs[1].URL)
}

func TestAggregator_Finalize_RanksGroupsByTotalTime(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t)

	agg.Accumulate(record("GET", "/cheap/", 100))
	agg.Accumulate(record("GET", "/mid/", 200))
	agg.Accumulate(record("GET", "/dear/", 300))

	summary := agg.Finalize(0, 0)

	require.Len(t, summary.Groups, 3)
	assert.Equal(t, "/dear/", summary.Groups[0].Pattern)
	assert.Equal(t, "/mid/", summary.Groups[1].Pattern)
	assert.Equal(t, "/cheap/", summary.Groups[2].Pattern)
}

func TestAggregator_Finalize_TiesBreakOnMethodThenPattern(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t)

	agg.Accumulate(record("POST", "/b/", 100))
	agg.Accumulate(record("GET", "/b/", 100))
	agg.Accumulate(record("GET", "/a/", 100))

	summary := agg.Finalize(0, 0)

	require.Len(t, summary.Groups, 3)
	assert.Equal(t, models.URLGroupKey{Method: "GET", Pattern: "/a/"},
		models.URLGroupKey{Method: summary.Groups[0].Method, Pattern: summary.Groups[0].Pattern})
	assert.Equal(t, models.URLGroupKey{Method: "GET", Pattern: "/b/"},
		models.URLGroupKey{Method: summary.Groups[1].Method, Pattern: summary.Groups[1].Pattern})
	assert.Equal(t, models.URLGroupKey{Method: "POST", Pattern: "/b/"},
		models.URLGroupKey{Method: summary.Groups[2].Method, Pattern: summary.Groups[2].Pattern})
}

func TestAggregator_Finalize_TruncationKeepsGrandTotals(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t)

	agg.Accumulate(record("GET", "/heavy/", 300))
	agg.Accumulate(record("GET", "/mid/", 200))
	agg.Accumulate(record("GET", "/light/", 100))

	summary := agg.Finalize(1, 1)

	require.Len(t, summary.Groups, 1)
	assert.Equal(t, "/heavy/", summary.Groups[0].Pattern)

	// Grand totals and seen counts cover the dropped groups too.
	assert.Equal(t, int64(3), summary.TotalRequests)
	assert.Equal(t, int64(600), summary.TotalTimeMS)
	assert.Equal(t, 3, summary.GroupsSeen)
	assert.Equal(t, 3, summary.URLsSeen)
}

func TestAggregator_Finalize_URLTruncationKeepsGroupTotals(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t)

	agg.Accumulate(record("GET", "/users/1/", 300))
	agg.Accumulate(record("GET", "/users/2/", 200))
	agg.Accumulate(record("GET", "/users/3/", 100))

	summary := agg.Finalize(0, 2)

	require.Len(t, summary.Groups, 1)
	group := summary.Groups[0]

	require.Len(t, group.URLs, 2)
	assert.Equal(t, "/users/1/", group.URLs[0].URL)
	assert.Equal(t, "/users/2/", group.URLs[1].URL)

	// The group's own numbers still cover the truncated URL.
	assert.Equal(t, int64(3), group.Count)
	assert.Equal(t, int64(600), group.TotalTimeMS)
	assert.Equal(t, 3, group.URLsSeen)
}

func TestAggregator_Finalize_URLTimesSortedAscending(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t)

	agg.Accumulate(record("GET", "/users/42/", 100))
	agg.Accumulate(record("GET", "/users/42/", 300))
	agg.Accumulate(record("GET", "/users/42/", 200))

	summary := agg.Finalize(0, 0)

	require.Len(t, summary.Groups, 1)
	require.Len(t, summary.Groups[0].URLs, 1)

	url := summary.Groups[0].URLs[0]
	assert.Equal(t, []int64{100, 200, 300}, url.TimesMS)
	assert.Equal(t, 200.0, url.AvgTimeMS)
}

func TestAggregator_Finalize_URLTiesBreakOnURL(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t)

	agg.Accumulate(record("GET", "/users/2/", 100))
	agg.Accumulate(record("GET", "/users/1/", 100))

	summary := agg.Finalize(0, 0)

	require.Len(t, summary.Groups, 1)
	require.Len(t, summary.Groups[0].URLs, 2)
	assert.Equal(t, "/users/1/", summary.Groups[0].URLs[0].URL)
	assert.Equal(t, "/users/2/", summary.Groups[0].URLs[1].URL)
}

func TestAggregator_Merge_MatchesSingleAggregatorRun(t *testing.T) {
	t.Parallel()

	records := []*models.RequestRecord{
		record("GET", "/users/1/", 120),
		record("GET", "/users/2/", 80),
		record("POST", "/users/1/", 40),
		record("GET", "/orders/9/", 500),
		record("GET", "/users/1/", 60),
	}

	single := newTestAggregator(t)
	for _, rec := range records {
		single.Accumulate(rec)
	}

	shardA := newTestAggregator(t)
	shardB := newTestAggregator(t)
	for i, rec := range records {
		if i%2 == 0 {
			shardA.Accumulate(rec)
		} else {
			shardB.Accumulate(rec)
		}
	}
	merged := newTestAggregator(t)
	merged.Merge(shardB)
	merged.Merge(shardA)

	assert.Equal(t, single.Finalize(0, 0), merged.Finalize(0, 0))
}

func TestAggregator_Finalize_Repeatable(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t)

	agg.Accumulate(record("GET", "/users/42/", 300))
	agg.Accumulate(record("GET", "/users/42/", 100))

	first := agg.Finalize(0, 0)
	second := agg.Finalize(0, 0)

	assert.Equal(t, first, second)

	// Finalize must not consume state: further accumulation still works.
	agg.Accumulate(record("GET", "/users/42/", 200))
	third := agg.Finalize(0, 0)
	assert.Equal(t, int64(3), third.TotalRequests)
	assert.Equal(t, []int64{100, 200, 300}, third.Groups[0].URLs[0].TimesMS)
}

func TestAggregator_Finalize_Empty(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t)

	summary := agg.Finalize(10, 10)

	assert.Empty(t, summary.Groups)
	assert.Equal(t, int64(0), summary.TotalRequests)
	assert.Equal(t, int64(0), summary.TotalTimeMS)
	assert.Equal(t, 0, summary.GroupsSeen)
	assert.Equal(t, 0, summary.URLsSeen)
}
