package session

import "errors"

// ErrNoSession is returned by [Store.Load] when no persisted session exists,
// either because the operator never signed in or because the session was
// cleared after a logout or an expired-token response.
var ErrNoSession = errors.New("no stored session")
