// Package signup composes the account registration wizard into an HTTP
// server: storage backends, session cookies, localized rendering, and the
// request middleware chain.
package signup
