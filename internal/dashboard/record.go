// Package dashboard implements the admin-side data managers that
// operate directly on the local store collections, independently of
// the database-backed API.  Records are schema-less apart from two
// required fields: a generated time-based id and an RFC 3339
// timestamp.
package dashboard

import (
	"encoding/json"
	"strconv"
	"sync/atomic"
	"time"
)

// Record is one dashboard-managed document.  Fields holds the open
// payload (title, name, subject, ...); ID and Date are lifted out
// because every record must have them.
type Record struct {
	ID     string
	Date   string
	Fields map[string]any
}

// MarshalJSON flattens the payload and the required fields into one
// JSON object, the way the records were stored originally.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		flat[k] = v
	}
	flat["id"] = r.ID
	flat["date"] = r.Date
	return json.Marshal(flat)
}

// UnmarshalJSON splits id/date back out of the flat object.
func (r *Record) UnmarshalJSON(b []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(b, &flat); err != nil {
		return err
	}
	if v, ok := flat["id"].(string); ok {
		r.ID = v
	}
	if v, ok := flat["date"].(string); ok {
		r.Date = v
	}
	delete(flat, "id")
	delete(flat, "date")
	r.Fields = flat
	return nil
}

// lastID remembers the most recently issued id so that two records
// created within the same millisecond still get distinct ids.
var lastID atomic.Int64

// newID returns a time-based unique string id.
func newID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		last := lastID.Load()
		candidate := ms
		if candidate <= last {
			candidate = last + 1
		}
		if lastID.CompareAndSwap(last, candidate) {
			return strconv.FormatInt(candidate, 10)
		}
	}
}
