package configs

// DefaultYAML is the commented configuration template printed by the
// echo-conf command. It mirrors the built-in defaults in load_config.go.
const DefaultYAML = `# uwsgi-sloth configuration.

log:
  # trace, debug, info, warn, error
  level: info

analyze:
  # Requests faster than this many milliseconds are ignored entirely.
  min_msecs: 200
  # Number of ingest workers. 1 = plain sequential analysis; larger values
  # partition the log across workers and merge the shards afterwards.
  workers: 1
  # Requests whose method or status is not listed are dropped. An empty
  # list disables filtering on that dimension.
  allowed_methods: [GET, POST, PUT, DELETE, HEAD, OPTIONS, PATCH]
  allowed_statuses: []

report:
  # html, json or text
  format: html
  # How many URL groups the report keeps, ranked by total time.
  top_url_groups: 100
  # How many exact URLs each group keeps, ranked by total time.
  top_urls_per_group: 20

rules:
  # Optional file with one URL-grouping regex per line, first match wins.
  # Paths that match no rule fall back to numeric-segment collapsing,
  # e.g. /trips/2387949771/add_waypoint/ -> /trips/(\d+)/add_waypoint/
  url_file: ""

metrics:
  # Optional address for a diagnostics listener exposing /metrics and
  # /healthz while an analysis runs, e.g. 127.0.0.1:9191
  listen_addr: ""
`
