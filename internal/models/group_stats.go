package models

// URLGroupKey identifies one aggregation bucket: all requests with the same
// method whose paths classify to the same group pattern.
type URLGroupKey struct {
	Method  string
	Pattern string
}

// URLGroupStats accumulates statistics for one URLGroupKey, with a per-URL
// breakdown inside it. Distinct query strings count as distinct URLs within
// the group, while the group pattern collapses them to one logical endpoint.
//
// Example: after accumulating
//
//	POST /trips/2387949771/add_waypoint/  2767ms
//	POST /trips/9000000001/add_waypoint/  1034ms
//	POST /trips/2387949771/add_waypoint/   812ms
//
// the bucket for (POST, "/trips/(\d+)/add_waypoint/") holds Count=3,
// TotalTimeMS=4613 and two PerURL entries, one per concrete trip URL.
//
// Add and Merge are both additive, so shard stats built from disjoint slices
// of a log can be merged in any order and yield the same totals as a single
// sequential pass.
type URLGroupStats struct {
	Count       int64
	TotalTimeMS int64
	PerURL      map[string]*URLStats
}

// URLStats accumulates statistics for one exact URL within a group.
// ResponseTimes retains every observed value; it is kept in arrival order
// here and only sorted on copies when a summary is built.
type URLStats struct {
	Count         int64
	TotalTimeMS   int64
	ResponseTimes []int64
}

func NewURLGroupStats() *URLGroupStats {
	return &URLGroupStats{PerURL: make(map[string]*URLStats)}
}

// Add records one request with the given exact url and response time.
func (g *URLGroupStats) Add(url string, respTimeMS int64) {
	g.Count++
	g.TotalTimeMS += respTimeMS

	u, ok := g.PerURL[url]
	if !ok {
		u = &URLStats{}
		g.PerURL[url] = u
	}
	u.Count++
	u.TotalTimeMS += respTimeMS
	u.ResponseTimes = append(u.ResponseTimes, respTimeMS)
}

// Merge folds other into g key by key: counts and totals sum, response-time
// sequences concatenate.
func (g *URLGroupStats) Merge(other *URLGroupStats) {
	g.Count += other.Count
	g.TotalTimeMS += other.TotalTimeMS

	for url, ou := range other.PerURL {
		u, ok := g.PerURL[url]
		if !ok {
			u = &URLStats{}
			g.PerURL[url] = u
		}
		u.Count += ou.Count
		u.TotalTimeMS += ou.TotalTimeMS
		u.ResponseTimes = append(u.ResponseTimes, ou.ResponseTimes...)
	}
}
