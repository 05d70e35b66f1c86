package store

import "encoding/json"

// Collection is a typed view over a single store key holding a JSON
// array.  It is the repository seam for the demo data layer: the
// same interface could be re-backed by a real database without
// touching call sites.
//
// ReadAll never fails: a missing key or malformed JSON yields an
// empty slice.  WriteAll replaces the whole array in one Set, so a
// reader either sees the previous array or the new one.  Append
// prepends, keeping the newest record first.  There is no
// uniqueness enforcement beyond the IDs callers generate.
type Collection[T any] struct {
	store Store
	key   string
	id    func(T) string
}

// NewCollection binds a collection to a store key.  idOf extracts
// the record identifier used by RemoveByID.
func NewCollection[T any](s Store, key string, idOf func(T) string) *Collection[T] {
	return &Collection[T]{store: s, key: key, id: idOf}
}

// ReadAll returns the stored records, newest first.  Absent or
// unparseable data counts as an empty collection.
func (c *Collection[T]) ReadAll() []T {
	raw, ok := c.store.Get(c.key)
	if !ok {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

// WriteAll overwrites the whole collection.
func (c *Collection[T]) WriteAll(records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.store.Set(c.key, string(b))
}

// Append prepends a record so the collection stays ordered newest
// first.
func (c *Collection[T]) Append(record T) error {
	return c.WriteAll(append([]T{record}, c.ReadAll()...))
}

// RemoveByID filters out the record with the given id and writes
// the remainder back.  Removing an unknown id is a no-op.
func (c *Collection[T]) RemoveByID(id string) error {
	all := c.ReadAll()
	kept := all[:0]
	for _, r := range all {
		if c.id(r) != id {
			kept = append(kept, r)
		}
	}
	return c.WriteAll(kept)
}

// SeedIfEmpty persists the sample set when the collection has no
// records yet, so subsequent reads are stable across restarts.  It
// returns the records now in the collection.
func (c *Collection[T]) SeedIfEmpty(samples []T) []T {
	if all := c.ReadAll(); len(all) > 0 {
		return all
	}
	if err := c.WriteAll(samples); err != nil {
		return samples
	}
	return samples
}
