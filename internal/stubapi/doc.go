// Package stubapi implements a development double of the remote prospecting
// API. It serves the same routes and envelopes the console talks to in
// production — bearer-token auth, paginated listings, prospect job creation
// with a delayed READY transition, CSV downloads, and dashboard statistics —
// backed by in-memory state, so the console can be exercised end-to-end
// without the real backend.
package stubapi
