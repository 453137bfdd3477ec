package classifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLClassifier_Classify_DigitCollapseFallback(t *testing.T) {
	t.Parallel()

	classifier, err := New(nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		urlPath  string
		expected string
	}{
		{
			name:     "single id segment",
			urlPath:  "/trips/2387949771/add_waypoint/",
			expected: `/trips/(\d+)/add_waypoint/`,
		},
		{
			name:     "multiple id segments",
			urlPath:  "/users/42/posts/7/",
			expected: `/users/(\d+)/posts/(\d+)/`,
		},
		{
			name:     "consecutive id segments",
			urlPath:  "/a/1/2/3/b/",
			expected: `/a/(\d+)/(\d+)/(\d+)/b/`,
		},
		{
			name:     "no digits",
			urlPath:  "/trips/add_waypoint/",
			expected: "/trips/add_waypoint/",
		},
		{
			name:     "root path",
			urlPath:  "/",
			expected: "/",
		},
		{
			name:     "digits inside a segment stay literal",
			urlPath:  "/v2/list/",
			expected: "/v2/list/",
		},
		{
			name:     "segment starting with digits stays literal",
			urlPath:  "/12ab/x/",
			expected: "/12ab/x/",
		},
		{
			name:     "year-style segment stays literal",
			urlPath:  "/report2020/summary/",
			expected: "/report2020/summary/",
		},
		{
			name:     "trailing id without separator stays literal",
			urlPath:  "/users/42",
			expected: "/users/42",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, classifier.Classify(tt.urlPath))
		})
	}
}

func TestURLClassifier_Classify_UserRules(t *testing.T) {
	t.Parallel()

	classifier, err := New([]string{
		`trips/\d+/add_waypoint/`,
		`api/v1/users`,
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		urlPath  string
		expected string
	}{
		{
			name:     "regex rule returns its source text",
			urlPath:  "/trips/999/add_waypoint/",
			expected: `trips/\d+/add_waypoint/`,
		},
		{
			name:     "rule matches by prefix",
			urlPath:  "/api/v1/users/123/",
			expected: "api/v1/users",
		},
		{
			name:     "unmatched path falls back to digit collapse",
			urlPath:  "/orders/55/",
			expected: `/orders/(\d+)/`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, classifier.Classify(tt.urlPath))
		})
	}
}

func TestURLClassifier_Classify_FirstMatchWins(t *testing.T) {
	t.Parallel()

	classifier, err := New([]string{
		`trips/\d+/`,
		`trips/\d+/add_waypoint/`,
	})
	require.NoError(t, err)

	pattern := classifier.Classify("/trips/7/add_waypoint/")

	assert.Equal(t, `trips/\d+/`, pattern, "rules should apply in file order")
}

func TestURLClassifier_Classify_RuleAnchoredAtPathStart(t *testing.T) {
	t.Parallel()

	classifier, err := New([]string{`add_waypoint/`})
	require.NoError(t, err)

	pattern := classifier.Classify("/trips/7/add_waypoint/")

	assert.Equal(t, `/trips/(\d+)/add_waypoint/`, pattern,
		"a rule must match from the start of the path, not anywhere inside it")
}

func TestNew_InvalidRule(t *testing.T) {
	t.Parallel()

	classifier, err := New([]string{`trips/(\d+`})

	require.Error(t, err)
	assert.Nil(t, classifier)
	assert.Contains(t, err.Error(), `trips/(\d+`)
}
