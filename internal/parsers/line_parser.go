package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"
)

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks

// LineParser turns raw uWSGI access-log lines into request records.
type LineParser interface {
	// Parse extracts a request record from one log line. It returns nil for
	// lines that do not match the request grammar and for matched lines whose
	// method or status falls outside the configured allow-sets. Callers must
	// treat a nil record as "skip this line", not as an error.
	Parse(line string) *models.RequestRecord
}

// requestLineRe matches the request portion of a uWSGI access-log line. The
// pattern is unanchored: uWSGI prefixes the line with address, worker and
// timestamp fields whose exact shape varies between deployments, so only the
// stable "METHOD URL => generated ... in N msecs (HTTP/x.y STATUS)" core is
// matched.
var requestLineRe = regexp.MustCompile(
	`(?P<method>[A-Z]+) (?P<url>\S+) => generated .* in (?P<msecs>\d+) msecs \(HTTP/\S+ (?P<status>\d+)\)`,
)

var (
	idxMethod = requestLineRe.SubexpIndex("method")
	idxURL    = requestLineRe.SubexpIndex("url")
	idxMsecs  = requestLineRe.SubexpIndex("msecs")
	idxStatus = requestLineRe.SubexpIndex("status")
)

type lineParser struct {
	allowedMethods  map[string]struct{}
	allowedStatuses map[string]struct{}
}

// New creates a LineParser that keeps only records whose method and status are
// listed in the given allow-sets. An empty (or nil) slice disables filtering
// for that dimension.
func New(allowedMethods, allowedStatuses []string) LineParser {
	return &lineParser{
		allowedMethods:  toSet(allowedMethods),
		allowedStatuses: toSet(allowedStatuses),
	}
}

func (p *lineParser) Parse(line string) *models.RequestRecord {
	m := requestLineRe.FindStringSubmatch(line)
	if m == nil {
		metricLinesParsedTotal.WithLabelValues(outcomeNoMatch).Inc()
		return nil
	}

	method := m[idxMethod]
	if !allowed(p.allowedMethods, method) {
		metricLinesParsedTotal.WithLabelValues(outcomeMethodFiltered).Inc()
		return nil
	}

	status := m[idxStatus]
	if !allowed(p.allowedStatuses, status) {
		metricLinesParsedTotal.WithLabelValues(outcomeStatusFiltered).Inc()
		return nil
	}

	respTimeMS, err := strconv.ParseInt(m[idxMsecs], 10, 64)
	if err != nil {
		// The grammar guarantees digits, so this only fires on absurd
		// overflow-length values. Treat the line as malformed.
		metricLinesParsedTotal.WithLabelValues(outcomeNoMatch).Inc()
		return nil
	}

	url := strings.ReplaceAll(m[idxURL], "//", "/")
	urlPath := url
	if i := strings.IndexByte(url, '?'); i >= 0 {
		urlPath = url[:i]
	}

	metricLinesParsedTotal.WithLabelValues(outcomeOK).Inc()
	return &models.RequestRecord{
		Method:     method,
		URL:        url,
		URLPath:    urlPath,
		RespTimeMS: respTimeMS,
		Status:     status,
	}
}

// allowed reports whether value passes the allow-set. An empty set allows
// everything.
func allowed(set map[string]struct{}, value string) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[value]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
