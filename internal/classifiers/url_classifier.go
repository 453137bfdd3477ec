package classifiers

import (
	"fmt"
	"regexp"
)

//go:generate mockgen -source=url_classifier.go -destination=./mocks/url_classifier_mock.go -package=mocks

// URLClassifier maps concrete URL paths onto group patterns so that requests
// hitting the same endpoint aggregate together regardless of the IDs embedded
// in their paths.
type URLClassifier interface {
	// Classify returns the group pattern for urlPath. Every path classifies:
	// user-supplied rules are tried first in file order, and the built-in
	// fallback catches whatever they miss.
	Classify(urlPath string) string
}

type urlClassifier struct {
	rules []rule
}

// New compiles the given rule sources, in order, into a URLClassifier. Each
// source is matched against the start of the path, so a rule only has to spell
// out the prefix it cares about. A source that fails to compile aborts
// construction; rules are operator input and a broken one would silently
// reshuffle every report that follows.
func New(sources []string) (URLClassifier, error) {
	rules := make([]rule, 0, len(sources)+1)
	for _, source := range sources {
		matcher, err := regexp.Compile("^(?:" + source + ")")
		if err != nil {
			return nil, fmt.Errorf("compile url rule %q: %w", source, err)
		}
		rules = append(rules, &userRule{source: source, matcher: matcher})
	}
	rules = append(rules, digitCollapseRule{})
	return &urlClassifier{rules: rules}, nil
}

func (c *urlClassifier) Classify(urlPath string) string {
	for _, r := range c.rules {
		if pattern, ok := r.match(urlPath); ok {
			return pattern
		}
	}
	// Unreachable: the fallback rule claims every path.
	return urlPath
}
