// Package shell owns the top-level session state shared by the navigation
// surface.
package shell

// Session holds the single logged-in flag. There is no identity, token or
// expiry at this layer; the flag lives until process exit. It is mutated only
// through the capability returned by LoginNotifier, which the composition
// root hands to the login flow.
type Session struct {
	loggedIn bool
}

func NewSession() *Session {
	return &Session{}
}

// LoggedIn reports the cosmetic logged-in state. It does not gate order
// submission.
func (s *Session) LoggedIn() bool {
	return s.loggedIn
}

// LoginNotifier returns the callback the login flow invokes on successful
// verification.
func (s *Session) LoginNotifier() func() {
	return func() {
		s.loggedIn = true
	}
}
