package domain

// AuthState is the outcome of resolving a request's identity.
type AuthState string

const (
	AuthStateAnonymous      AuthState = "ANONYMOUS"
	AuthStateAuthenticating AuthState = "AUTHENTICATING"
	AuthStateAuthenticated  AuthState = "AUTHENTICATED"
	AuthStateRejected       AuthState = "REJECTED"
)

func (s AuthState) String() string { return string(s) }

func (s AuthState) IsValid() bool {
	switch s {
	case AuthStateAnonymous, AuthStateAuthenticating, AuthStateAuthenticated, AuthStateRejected:
		return true
	}
	return false
}

// Identity is the resolved identity of a request.
// User is set only in AuthStateAuthenticated; Reason only in AuthStateRejected.
type Identity struct {
	State  AuthState
	User   *User
	Reason error
}

// Anonymous returns an identity with no user.
func Anonymous() Identity {
	return Identity{State: AuthStateAnonymous}
}

// Authenticated returns an identity bound to u.
func Authenticated(u *User) Identity {
	return Identity{State: AuthStateAuthenticated, User: u}
}

// Rejected returns an identity that failed authentication for reason.
func Rejected(reason error) Identity {
	return Identity{State: AuthStateRejected, Reason: reason}
}

// IsAuthenticated reports whether the identity carries a user.
func (i Identity) IsAuthenticated() bool {
	return i.State == AuthStateAuthenticated && i.User != nil
}
