package models

// RequestRecord is one request extracted from a single access-log line.
// URL keeps the query string; URLPath is the normalized path used for
// classification. Records are immutable once produced by the parser.
type RequestRecord struct {
	Method     string
	URL        string
	URLPath    string
	RespTimeMS int64
	Status     string
}
