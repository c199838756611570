// Package registration serves the signup wizard over HTTP.
//
// Every request is bound to a Visit: the visitor's session id plus a handle
// to the session store. Handlers receive the Visit explicitly and hand it to
// the step service, which validates input, applies the wizard transition and
// persists the result.
package registration
