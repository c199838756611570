// Package sqlite provides the signup persistence adapter backed by SQLite.
//
// One database holds both registered users and in-progress registration
// sessions.
package sqlite
