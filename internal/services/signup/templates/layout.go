package templates

import "strings"

// Toast is a one-time notice shown above the page content.
type Toast struct {
	Kind    string
	Message string
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang      string
	Loc       Localizer
	Languages []LanguageOption
	Toast     *Toast
}

// pageTitle suffixes title with the application name.
func pageTitle(title string, loc Localizer) string {
	appName := T(loc, "wizard.title")
	if title = strings.TrimSpace(title); title != "" && title != appName {
		return title + " · " + appName
	}
	return appName
}

func hasToast(page PageContext) bool {
	return page.Toast != nil && page.Toast.Message != ""
}
