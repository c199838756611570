package catalog

var enUS = map[string]string{
	"wizard.title":                    "Create your account",
	"wizard.step.username.title":      "Choose a username",
	"wizard.step.username.edit_title": "Change your username",
	"wizard.step.email.title":         "Your email address",
	"wizard.step.email.edit_title":    "Change your email address",
	"wizard.step.password.title":      "Choose a password",
	"wizard.step.password.edit_title": "Change your password",
	"wizard.step.confirm.title":       "Confirm your password",
	"wizard.step.progress":            "Step %d of %d",
	"wizard.field.username":           "Username",
	"wizard.field.email":              "Email address",
	"wizard.field.password":           "Password",
	"wizard.field.confirm":            "Confirm password",
	"wizard.action.next":              "Continue",
	"wizard.action.confirm":           "Create account",
	"wizard.action.edit":              "Edit",
	"wizard.action.restart":           "Start over",
	"wizard.summary.heading":          "Your details",
	"wizard.error.required":           "This field is required.",
	"wizard.error.email":              "Enter a valid email address.",
	"wizard.error.too_long":           "This value is too long.",
	"wizard.error.password_mismatch":  "Passwords do not match.",
	"wizard.notice.complete":          "Registration completed successfully.",
	"wizard.notice.restart":           "Your registration was not found. Please start again.",
	"wizard.complete.title":           "Welcome aboard",
	"wizard.complete.body":            "The account %s has been created.",
	"error.not_found.title":           "Page not found",
	"error.not_found.body":            "The page you are looking for does not exist.",
	"error.forbidden.title":           "Request refused",
	"error.forbidden.body":            "This form must be submitted from this site.",
	"error.internal.title":            "Something went wrong",
	"error.internal.body":             "We could not process your request. Please try again.",
	"nav.lang_en":                     "English",
	"nav.lang_fr":                     "Français",
}
