// Package session owns the process-wide demo authentication state.
// A single Manager is created by the composition root and handed to
// consumers; there is no package-level singleton.  All transitions
// preserve the invariant that Authenticated is true exactly when
// both User and Token are set.
package session

import (
	"regexp"
	"sync"
	"time"

	"github.com/tsegaye25/portfolio-api/internal/store"
	"github.com/tsegaye25/portfolio-api/internal/token"
)

// UserInfo is the identity carried in session state.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// State is a snapshot of the session.  ProfileImage is keyed
// separately in the store and therefore survives logout.
type State struct {
	Authenticated bool
	User          *UserInfo
	ProfileImage  string
	Token         string
	Loading       bool
	Err           string
}

// UserUpdate carries the partial fields accepted by UpdateUser.
// Empty strings mean "leave unchanged".
type UserUpdate struct {
	Name     string
	Email    string
	Password string
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Manager is the only writer of the session token and the
// credential directory.  It is safe for concurrent use; every
// mutation happens under one mutex and writes through to the store
// before the new state becomes visible.
type Manager struct {
	store store.Store
	creds *CredentialDirectory
	now   func() time.Time

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

// Option customizes a Manager; used by tests to pin the clock.
type Option func(*Manager)

// WithClock replaces the time source used for token issuance.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager builds a session manager over the given store.  The
// profile image is loaded eagerly; Loading stays true until
// Bootstrap has run.
func NewManager(s store.Store, opts ...Option) *Manager {
	m := &Manager{
		store: s,
		creds: NewCredentialDirectory(s),
		now:   time.Now,
		subs:  make(map[int]func(State)),
	}
	for _, o := range opts {
		o(m)
	}
	img, _ := s.Get(store.KeyProfileImage)
	m.state = State{Loading: true, ProfileImage: img}
	return m
}

// Get returns a copy of the current state.
func (m *Manager) Get() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers a callback invoked after every state
// transition and returns an unsubscribe func.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// setState replaces the state under lock and notifies subscribers
// outside it.
func (m *Manager) setState(mutate func(*State)) {
	m.mu.Lock()
	mutate(&m.state)
	snapshot := m.state
	fns := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}

// Bootstrap restores a session from a previously persisted token.
// A malformed token is recoverable: the key is removed and the user
// is asked to log in again.  Loading is cleared on every path.
func (m *Manager) Bootstrap() {
	tok, ok := m.store.Get(store.KeyToken)
	if !ok {
		m.setState(func(st *State) { st.Loading = false })
		return
	}
	claims, err := token.Decode(tok)
	if err != nil {
		_ = m.store.Delete(store.KeyToken)
		m.setState(func(st *State) {
			st.Authenticated = false
			st.User = nil
			st.Token = ""
			st.Err = MsgReloginRequired
			st.Loading = false
		})
		return
	}
	m.setState(func(st *State) {
		st.Authenticated = true
		st.User = &UserInfo{Name: claims.Name, Email: claims.Email}
		st.Token = tok
		st.Err = ""
		st.Loading = false
	})
}

// Login checks the credential directory and, on success, mints and
// persists a fresh token.  Expected failures (unknown email, wrong
// password) return false with the generic credentials message; the
// two causes stay distinguishable via the returned sentinel in
// loginErr, which is only used internally.
func (m *Manager) Login(email, password string) bool {
	if err := m.loginErr(email, password); err != nil {
		m.failAuth(MsgInvalidCredentials)
		return false
	}
	return true
}

func (m *Manager) loginErr(email, password string) error {
	cred, ok := m.creds.FindByEmail(email)
	if !ok {
		return ErrUserNotFound
	}
	if cred.Password != password {
		return ErrInvalidPassword
	}
	return m.startSession(cred.Name, cred.Email, m.now().UnixMilli())
}

// Register validates input before touching storage, refuses emails
// already present in the seed set, then starts a session exactly as
// Login does.  The new credential is persisted so the account can
// log in again later.
func (m *Manager) Register(name, email, password string) bool {
	if !emailRe.MatchString(email) {
		m.failAuth(MsgInvalidEmail)
		return false
	}
	if len(password) < 8 {
		m.failAuth(MsgPasswordTooShort)
		return false
	}
	for _, seed := range seedCredentials() {
		if seed.Email == email {
			m.failAuth(MsgEmailInUse)
			return false
		}
	}
	if err := m.startSession(name, email, m.now().UnixMilli()); err != nil {
		m.failAuth(MsgInvalidCredentials)
		return false
	}
	// durably record the new account so it can log in again later
	_ = m.creds.Upsert(email, Credential{Email: email, Password: password, Name: name})
	return true
}

// startSession mints a token with the given issuance time, writes
// it through and flips state to authenticated.
func (m *Manager) startSession(name, email string, issuedAt int64) error {
	tok, err := token.Encode(email, name, issuedAt)
	if err != nil {
		return err
	}
	if err := m.store.Set(store.KeyToken, tok); err != nil {
		return err
	}
	m.setState(func(st *State) {
		st.Authenticated = true
		st.User = &UserInfo{Name: name, Email: email}
		st.Token = tok
		st.Err = ""
	})
	return nil
}

// failAuth forces the unauthenticated state, removes any persisted
// token and records the message.
func (m *Manager) failAuth(msg string) {
	_ = m.store.Delete(store.KeyToken)
	m.setState(func(st *State) {
		st.Authenticated = false
		st.User = nil
		st.Token = ""
		st.Err = msg
	})
}

// Logout clears the session.  The profile image key is left alone.
// Calling it twice is harmless.
func (m *Manager) Logout() {
	_ = m.store.Delete(store.KeyToken)
	m.setState(func(st *State) {
		st.Authenticated = false
		st.User = nil
		st.Token = ""
	})
}

// UpdateUser merges partial fields into the session user, re-mints
// the token preserving its original issuance timestamp, and upserts
// the credential record matched by the email in force before the
// update.
func (m *Manager) UpdateUser(upd UserUpdate) bool {
	st := m.Get()
	if !st.Authenticated || st.User == nil || st.Token == "" {
		return false
	}
	claims, err := token.Decode(st.Token)
	if err != nil {
		return false
	}
	prevEmail := st.User.Email
	name := st.User.Name
	email := prevEmail
	if upd.Name != "" {
		name = upd.Name
	}
	if upd.Email != "" {
		email = upd.Email
	}
	newTok, err := token.Encode(email, name, claims.IssuedAt)
	if err != nil {
		return false
	}
	if err := m.store.Set(store.KeyToken, newTok); err != nil {
		return false
	}
	if err := m.creds.Upsert(prevEmail, Credential{Email: email, Name: name, Password: upd.Password}); err != nil {
		return false
	}
	m.setState(func(s *State) {
		s.User = &UserInfo{Name: name, Email: email}
		s.Token = newTok
	})
	return true
}

// UpdateProfileImage stores the image and reflects it in state.
func (m *Manager) UpdateProfileImage(data string) {
	_ = m.store.Set(store.KeyProfileImage, data)
	m.setState(func(st *State) { st.ProfileImage = data })
}

// RemoveProfileImage clears the stored image.
func (m *Manager) RemoveProfileImage() {
	_ = m.store.Delete(store.KeyProfileImage)
	m.setState(func(st *State) { st.ProfileImage = "" })
}

// ClearError resets the session error field.
func (m *Manager) ClearError() {
	m.setState(func(st *State) { st.Err = "" })
}
