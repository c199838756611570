// Package storage declares persistence contracts for the signup service.
//
// Sessions hold in-progress registrations and may be discarded at any time.
// Users are the durable outcome of a completed registration.
package storage
