package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsegaye25/portfolio-api/internal/store"
)

func TestGuard(t *testing.T) {
	tests := []struct {
		name string
		st   State
		want Decision
	}{
		{"loading wins over everything", State{Loading: true, Authenticated: true}, DecisionLoading},
		{"authenticated", State{Authenticated: true, User: &UserInfo{Name: "A"}}, DecisionAllow},
		{"unauthenticated", State{}, DecisionRedirect},
		{"after forced logout", State{Err: MsgReloginRequired}, DecisionRedirect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guard(tt.st))
		})
	}
}

func TestGuardFollowsManagerTransitions(t *testing.T) {
	m := NewManager(store.NewMemoryStore())
	assert.Equal(t, DecisionLoading, Guard(m.Get()))

	m.Bootstrap()
	assert.Equal(t, DecisionRedirect, Guard(m.Get()))

	m.Login("admin@portfolio.com", "admin123")
	assert.Equal(t, DecisionAllow, Guard(m.Get()))

	m.Logout()
	assert.Equal(t, DecisionRedirect, Guard(m.Get()))
}
