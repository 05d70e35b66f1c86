package session

// Decision is the route guard's verdict for the admin area.  The
// guard holds no state of its own: the decision is a pure function
// of the current session state.
type Decision int

const (
	// DecisionLoading means the session is still being restored and
	// the caller should show a placeholder.
	DecisionLoading Decision = iota
	// DecisionAllow renders the protected subtree.
	DecisionAllow
	// DecisionRedirect sends the visitor to the login entry point.
	DecisionRedirect
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionAllow:
		return "allow"
	default:
		return "redirect"
	}
}

// Guard evaluates session state for dashboard access.
func Guard(st State) Decision {
	if st.Loading {
		return DecisionLoading
	}
	if st.Authenticated {
		return DecisionAllow
	}
	return DecisionRedirect
}
