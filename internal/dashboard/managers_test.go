package dashboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsegaye25/portfolio-api/internal/store"
)

func TestMessagesAddNewestFirst(t *testing.T) {
	s := store.NewMemoryStore()
	m := NewMessages(s, nil)

	first, err := m.Add(map[string]any{"name": "Alice", "subject": "Hi"})
	require.NoError(t, err)
	second, err := m.Add(map[string]any{"name": "Bob", "subject": "Hello"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all := m.List()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, "Alice", all[1].Fields["name"])

	// timestamps are RFC 3339
	_, err = time.Parse(time.RFC3339, all[0].Date)
	assert.NoError(t, err)
}

func TestMessagesDelete(t *testing.T) {
	m := NewMessages(store.NewMemoryStore(), nil)
	rec, err := m.Add(map[string]any{"name": "Alice"})
	require.NoError(t, err)
	keep, err := m.Add(map[string]any{"name": "Bob"})
	require.NoError(t, err)

	require.NoError(t, m.Delete(rec.ID))
	all := m.List()
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)
}

func TestRepliesThreading(t *testing.T) {
	s := store.NewMemoryStore()
	m := NewMessages(s, nil)
	msg, err := m.Add(map[string]any{"name": "Alice"})
	require.NoError(t, err)

	r1, err := m.Reply(msg.ID, "thanks for reaching out")
	require.NoError(t, err)
	r2, err := m.Reply(msg.ID, "following up")
	require.NoError(t, err)

	threads := m.Replies()
	require.Len(t, threads[msg.ID], 2)
	assert.Equal(t, r1.Text, threads[msg.ID][0].Text)
	assert.Equal(t, r2.Text, threads[msg.ID][1].Text)
	assert.Equal(t, "admin", threads[msg.ID][0].Sender)
}

func TestRepliesTolerateGarbage(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(store.KeyReplies, "{broken"))
	m := NewMessages(s, nil)
	assert.Empty(t, m.Replies())
}

func TestProjectsSeedOnFirstList(t *testing.T) {
	s := store.NewMemoryStore()
	p := NewProjects(s, nil)

	seeded := p.List()
	assert.NotEmpty(t, seeded)

	// the seed is persisted: a second manager sees the same records
	again := NewProjects(s, nil).List()
	require.Len(t, again, len(seeded))
	assert.Equal(t, seeded[0].ID, again[0].ID)
}

func TestProjectsAddUpdateDelete(t *testing.T) {
	p := NewProjects(store.NewMemoryStore(), nil)
	baseline := len(p.List())

	rec, err := p.Add(map[string]any{"title": "New Thing"})
	require.NoError(t, err)
	assert.Len(t, p.List(), baseline+1)
	assert.Equal(t, rec.ID, p.List()[0].ID, "added project must be newest")

	upd, ok := p.Update(rec.ID, map[string]any{"title": "Renamed Thing", "live": "https://x.dev"})
	require.True(t, ok)
	assert.Equal(t, "Renamed Thing", upd.Fields["title"])
	assert.Equal(t, "Renamed Thing", p.List()[0].Fields["title"])

	_, ok = p.Update("missing-id", map[string]any{"title": "x"})
	assert.False(t, ok)

	require.NoError(t, p.Delete(rec.ID))
	assert.Len(t, p.List(), baseline)
}

func TestRecordJSONRoundTrip(t *testing.T) {
	rec := Record{
		ID:   "1700000000000",
		Date: "2024-06-01T12:00:00Z",
		Fields: map[string]any{
			"name":    "Alice",
			"subject": "Hi",
		},
	}
	b, err := json.Marshal(rec)
	require.NoError(t, err)

	// flat shape on the wire
	var flat map[string]any
	require.NoError(t, json.Unmarshal(b, &flat))
	assert.Equal(t, "1700000000000", flat["id"])
	assert.Equal(t, "Alice", flat["name"])

	var back Record
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, rec.ID, back.ID)
	assert.Equal(t, rec.Date, back.Date)
	assert.Equal(t, "Hi", back.Fields["subject"])
}
