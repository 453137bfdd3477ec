package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used for report IDs and for
// correlating all log lines of one analysis run.
var NewULID = func() string {
	return ulid.Make().String()
}
