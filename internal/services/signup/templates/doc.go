// Package templates renders signup pages as templ components.
//
// Components receive a Localizer and never resolve request state themselves.
package templates
