// Package client implements the interactive console application runtime.
//
// It wires the terminal UI flows and the application services into a single
// process lifecycle: restore or acquire a session, run the admin loop, and
// start over after logout.
package client
