package classifiers

import (
	"regexp"
	"strings"
)

// rule is one classification attempt. match returns the group pattern and
// whether the rule claimed the path.
type rule interface {
	match(urlPath string) (string, bool)
}

// userRule wraps one pattern line from the URL rules file. The pattern text
// itself doubles as the group name, so two deployments sharing a rules file
// produce reports with identical group labels.
type userRule struct {
	source  string
	matcher *regexp.Regexp
}

func (r *userRule) match(urlPath string) (string, bool) {
	// Rule files are written without the leading separator, mirroring how
	// operators copy paths out of reports.
	if r.matcher.MatchString(strings.TrimPrefix(urlPath, "/")) {
		return r.source, true
	}
	return "", false
}

// digitCollapseRule is the always-matching fallback: every run of digits that
// forms a whole path segment is replaced with the literal text `(\d+)/`, so
// /users/42/posts/7/ and /users/9/posts/1/ land in the same group.
type digitCollapseRule struct{}

var digitSegmentRe = regexp.MustCompile(`\d+/`)

func (digitCollapseRule) match(urlPath string) (string, bool) {
	locs := digitSegmentRe.FindAllStringIndex(urlPath, -1)
	if locs == nil {
		return urlPath, true
	}

	var b strings.Builder
	b.Grow(len(urlPath))
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		// Only collapse digit runs that start right after a separator;
		// digits embedded in a segment (v2/, report2020/) stay literal.
		if start == 0 || urlPath[start-1] != '/' {
			continue
		}
		b.WriteString(urlPath[last:start])
		b.WriteString(`(\d+)/`)
		last = end
	}
	b.WriteString(urlPath[last:])
	return b.String(), true
}
