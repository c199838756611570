// Package wizard implements the registration wizard's state machine.
//
// The wizard walks a visitor through four form steps (username, email,
// password, confirm) and accumulates validated values in a Registration. The
// package is pure: it decodes and validates submitted forms and decides the
// next step, while callers own session persistence and user creation.
package wizard
