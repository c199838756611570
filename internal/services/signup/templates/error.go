package templates

import "net/http"

func errorKeyPrefix(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "error.not_found"
	case http.StatusForbidden:
		return "error.forbidden"
	default:
		return "error.internal"
	}
}

// ErrorPageTitleKey returns the catalog key of the error page title.
func ErrorPageTitleKey(statusCode int) string {
	return errorKeyPrefix(statusCode) + ".title"
}

func errorBodyKey(statusCode int) string {
	return errorKeyPrefix(statusCode) + ".body"
}
