package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsegaye25/portfolio-api/internal/store"
	"github.com/tsegaye25/portfolio-api/internal/token"
)

func fixedClock(millis int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(millis) }
}

func newTestManager(t *testing.T) (*Manager, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	m := NewManager(s, WithClock(fixedClock(1700000000000)))
	m.Bootstrap()
	return m, s
}

func TestLoginSeededAdmin(t *testing.T) {
	m, s := newTestManager(t)

	ok := m.Login("admin@portfolio.com", "admin123")
	require.True(t, ok)

	st := m.Get()
	assert.True(t, st.Authenticated)
	require.NotNil(t, st.User)
	assert.Equal(t, "Admin User", st.User.Name)
	assert.Equal(t, "admin@portfolio.com", st.User.Email)
	assert.Empty(t, st.Err)

	// the persisted token decodes back to the same identity
	raw, ok := s.Get(store.KeyToken)
	require.True(t, ok)
	claims, err := token.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "admin@portfolio.com", claims.Email)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, int64(1700000000000), claims.IssuedAt)
}

func TestLoginFailureLeavesUnauthenticated(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown user", "nobody@example.com", "whatever1"},
		{"wrong password", "admin@portfolio.com", "not-the-password"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, s := newTestManager(t)
			ok := m.Login(tt.email, tt.password)
			assert.False(t, ok)

			st := m.Get()
			assert.False(t, st.Authenticated)
			assert.Nil(t, st.User)
			assert.Empty(t, st.Token)
			assert.Equal(t, MsgInvalidCredentials, st.Err)
			_, exists := s.Get(store.KeyToken)
			assert.False(t, exists)
		})
	}
}

func TestLoginErrCausesAreDistinguishable(t *testing.T) {
	m, _ := newTestManager(t)
	assert.ErrorIs(t, m.loginErr("nobody@example.com", "x"), ErrUserNotFound)
	assert.ErrorIs(t, m.loginErr("admin@portfolio.com", "x"), ErrInvalidPassword)
}

func TestLogoutIsIdempotentAndKeepsProfileImage(t *testing.T) {
	m, s := newTestManager(t)
	m.UpdateProfileImage("data:image/png;base64,xyz")
	require.True(t, m.Login("admin@portfolio.com", "admin123"))

	m.Logout()
	first := m.Get()
	m.Logout()
	second := m.Get()

	assert.Equal(t, first, second)
	assert.False(t, second.Authenticated)
	assert.Nil(t, second.User)
	assert.Empty(t, second.Token)
	assert.Equal(t, "data:image/png;base64,xyz", second.ProfileImage)

	// the image key stays in the store even though the token is gone
	_, hasToken := s.Get(store.KeyToken)
	assert.False(t, hasToken)
	img, hasImg := s.Get(store.KeyProfileImage)
	assert.True(t, hasImg)
	assert.Equal(t, "data:image/png;base64,xyz", img)
}

func TestBootstrapRestoresSession(t *testing.T) {
	s := store.NewMemoryStore()
	tok, err := token.Encode("admin@portfolio.com", "Admin User", 42)
	require.NoError(t, err)
	require.NoError(t, s.Set(store.KeyToken, tok))

	m := NewManager(s)
	assert.True(t, m.Get().Loading)
	m.Bootstrap()

	st := m.Get()
	assert.False(t, st.Loading)
	assert.True(t, st.Authenticated)
	require.NotNil(t, st.User)
	assert.Equal(t, "Admin User", st.User.Name)
	assert.Equal(t, tok, st.Token)
}

func TestBootstrapWithGarbageToken(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(store.KeyToken, "garbage"))

	m := NewManager(s)
	m.Bootstrap()

	st := m.Get()
	assert.False(t, st.Loading)
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Equal(t, MsgReloginRequired, st.Err)
	_, exists := s.Get(store.KeyToken)
	assert.False(t, exists, "the bad token must be removed from storage")
}

func TestBootstrapWithoutToken(t *testing.T) {
	m, _ := newTestManager(t)
	st := m.Get()
	assert.False(t, st.Loading)
	assert.False(t, st.Authenticated)
	assert.Empty(t, st.Err)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantMsg  string
	}{
		{"bad email", "not-an-email", "longenough", MsgInvalidEmail},
		{"no tld", "user@host", "longenough", MsgInvalidEmail},
		{"short password", "ok@example.com", "short", MsgPasswordTooShort},
		{"seeded email", "admin@portfolio.com", "longenough", MsgEmailInUse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t)
			ok := m.Register("Someone", tt.email, tt.password)
			assert.False(t, ok)
			st := m.Get()
			assert.False(t, st.Authenticated)
			assert.Equal(t, tt.wantMsg, st.Err)
		})
	}
}

func TestRegisterPersistsCredential(t *testing.T) {
	m, s := newTestManager(t)
	require.True(t, m.Register("New Person", "new@example.com", "longenough"))

	st := m.Get()
	assert.True(t, st.Authenticated)
	require.NotNil(t, st.User)
	assert.Equal(t, "new@example.com", st.User.Email)

	// a second manager over the same store can log the account in
	m2 := NewManager(s)
	m2.Bootstrap()
	m2.Logout()
	assert.True(t, m2.Login("new@example.com", "longenough"))
}

func TestUpdateUserPreservesIssuedAt(t *testing.T) {
	m, s := newTestManager(t)
	require.True(t, m.Login("admin@portfolio.com", "admin123"))

	require.True(t, m.UpdateUser(UserUpdate{Name: "Renamed Admin", Email: "boss@portfolio.com"}))

	st := m.Get()
	require.NotNil(t, st.User)
	assert.Equal(t, "Renamed Admin", st.User.Name)
	assert.Equal(t, "boss@portfolio.com", st.User.Email)

	claims, err := token.Decode(st.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), claims.IssuedAt, "issuance timestamp must survive the re-mint")
	assert.Equal(t, "boss@portfolio.com", claims.Email)

	// the credential record keyed by the previous email was rewritten
	dir := NewCredentialDirectory(s)
	renamed, ok := dir.FindByEmail("boss@portfolio.com")
	require.True(t, ok)
	assert.Equal(t, "Renamed Admin", renamed.Name)
	assert.Equal(t, "admin123", renamed.Password, "password is kept when the update omits one")
}

func TestUpdateUserRequiresSession(t *testing.T) {
	m, _ := newTestManager(t)
	assert.False(t, m.UpdateUser(UserUpdate{Name: "Nobody"}))
}

func TestSubscribeNotifiesOnTransition(t *testing.T) {
	m, _ := newTestManager(t)
	var seen []bool
	unsub := m.Subscribe(func(st State) { seen = append(seen, st.Authenticated) })

	require.True(t, m.Login("admin@portfolio.com", "admin123"))
	m.Logout()
	unsub()
	m.Logout() // no notification after unsubscribe

	require.Len(t, seen, 2)
	assert.True(t, seen[0])
	assert.False(t, seen[1])
}

func TestClearError(t *testing.T) {
	m, _ := newTestManager(t)
	m.Login("nobody@example.com", "x")
	require.Equal(t, MsgInvalidCredentials, m.Get().Err)
	m.ClearError()
	assert.Empty(t, m.Get().Err)
}
