package models

// Profile is the cached identity of the logged-in operator. It mirrors the
// profile blob the console persists alongside the bearer token.
type Profile struct {
	// ID is the server-assigned account identifier.
	ID int64 `json:"id"`

	// Username is the display name shown in the console header.
	Username string `json:"user"`
}

// Session is the client-held authentication state: an opaque bearer token and
// the operator profile cached at login time. Token and Profile are always
// persisted and cleared together; the console never inspects the token.
type Session struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// Credentials carries the login form values sent to the authentication
// endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the success payload of the login endpoint.
type LoginResult struct {
	// AccessToken is the opaque bearer credential attached to every
	// authenticated request until the server rejects it.
	AccessToken string `json:"access_token"`

	// ID is the authenticated account identifier.
	ID int64 `json:"id"`

	// User is the operator display name.
	User string `json:"user"`
}

// Session converts a login result into the session state to persist.
func (r LoginResult) Session() Session {
	return Session{
		Token:   r.AccessToken,
		Profile: Profile{ID: r.ID, Username: r.User},
	}
}
