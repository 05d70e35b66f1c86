package dashboard

import (
	"encoding/json"
	"time"

	"github.com/tsegaye25/portfolio-api/internal/store"
)

// Reply is one admin reply threaded under a message id.
type Reply struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Date   string `json:"date"`
	Sender string `json:"sender"`
}

// Messages manages the portfolioMessages collection plus the reply
// threads stored under messageReplies.
type Messages struct {
	store store.Store
	col   *store.Collection[Record]
	now   func() time.Time
}

// NewMessages binds a messages manager to the store.  The clock is
// injectable for tests.
func NewMessages(s store.Store, now func() time.Time) *Messages {
	if now == nil {
		now = time.Now
	}
	return &Messages{
		store: s,
		col:   store.NewCollection[Record](s, store.KeyMessages, func(r Record) string { return r.ID }),
		now:   now,
	}
}

// List returns all messages, newest first.
func (m *Messages) List() []Record {
	return m.col.ReadAll()
}

// Add stores a new message (typically a contact-form submission)
// with a generated id and timestamp, and returns it.
func (m *Messages) Add(fields map[string]any) (Record, error) {
	rec := Record{
		ID:     newID(m.now()),
		Date:   m.now().UTC().Format(time.RFC3339),
		Fields: fields,
	}
	return rec, m.col.Append(rec)
}

// Delete removes a message by id.  Its reply thread is left behind,
// matching the original behavior.
func (m *Messages) Delete(id string) error {
	return m.col.RemoveByID(id)
}

// Replies loads all reply threads keyed by message id.  Malformed
// data counts as no replies.
func (m *Messages) Replies() map[string][]Reply {
	raw, ok := m.store.Get(store.KeyReplies)
	if !ok {
		return map[string][]Reply{}
	}
	var out map[string][]Reply
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return map[string][]Reply{}
	}
	return out
}

// Reply appends an admin reply to the thread of the given message
// and persists the whole reply map.
func (m *Messages) Reply(messageID, text string) (Reply, error) {
	rep := Reply{
		ID:     newID(m.now()),
		Text:   text,
		Date:   m.now().UTC().Format(time.RFC3339),
		Sender: "admin",
	}
	threads := m.Replies()
	threads[messageID] = append(threads[messageID], rep)
	b, err := json.Marshal(threads)
	if err != nil {
		return Reply{}, err
	}
	return rep, m.store.Set(store.KeyReplies, string(b))
}
