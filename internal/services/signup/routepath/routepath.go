// Package routepath stores canonical HTTP paths for the signup wizard.
package routepath

import "github.com/louisbranch/signup/internal/services/signup/wizard"

const (
	Root            = "/"
	UsernameEdit    = "/username/edit/"
	Email           = "/email/"
	EmailEdit       = "/email/edit/"
	Password        = "/password/"
	PasswordEdit    = "/password/edit/"
	PasswordConfirm = "/password/confirm/"
	Health          = "/up"
)

// ForStep returns the fresh-form route of step. StepDone has no route of its
// own and maps to Root.
func ForStep(step wizard.Step) string {
	switch step {
	case wizard.StepEmail:
		return Email
	case wizard.StepPassword:
		return Password
	case wizard.StepConfirm:
		return PasswordConfirm
	default:
		return Root
	}
}

// EditForStep returns the edit route of step, or "" when it has none.
func EditForStep(step wizard.Step) string {
	switch step {
	case wizard.StepUsername:
		return UsernameEdit
	case wizard.StepEmail:
		return EmailEdit
	case wizard.StepPassword:
		return PasswordEdit
	default:
		return ""
	}
}
