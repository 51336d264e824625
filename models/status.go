package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// JobStatus is the readiness state of a prospect job. The server reports the
// raw status inconsistently as either a number or a string; the ambiguity is
// resolved here, at the decode boundary, so the rest of the console only ever
// sees the typed enumeration.
type JobStatus int

const (
	// JobStatusPending means the export is still being generated server-side.
	JobStatusPending JobStatus = 0

	// JobStatusReady means the export file can be downloaded.
	JobStatusReady JobStatus = 1
)

// Ready reports whether the job's export file is available for download.
func (s JobStatus) Ready() bool {
	return s == JobStatusReady
}

func (s JobStatus) String() string {
	if s.Ready() {
		return "ready"
	}
	return "pending"
}

// UnmarshalJSON accepts the numeric 1, the string "1", or any other value.
// Anything that does not loosely equal 1 is treated as pending.
func (s *JobStatus) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`)))
	if n, err := strconv.Atoi(raw); err == nil && n == 1 {
		*s = JobStatusReady
		return nil
	}
	*s = JobStatusPending
	return nil
}

// MarshalJSON emits the numeric form the server uses.
func (s JobStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(s))
}
