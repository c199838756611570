package wizard

import "fmt"

// Step identifies one stage of the wizard.
type Step int

const (
	StepUsername Step = iota + 1
	StepEmail
	StepPassword
	StepConfirm
	StepDone
)

// FormSteps lists the data-collecting steps in wizard order.
var FormSteps = []Step{StepUsername, StepEmail, StepPassword, StepConfirm}

// String returns the stable lowercase step name.
func (s Step) String() string {
	switch s {
	case StepUsername:
		return "username"
	case StepEmail:
		return "email"
	case StepPassword:
		return "password"
	case StepConfirm:
		return "confirm"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	return s >= StepUsername && s <= StepDone
}

// Position returns the 1-based index of a form step, or 0 for other steps.
func (s Step) Position() int {
	for i, step := range FormSteps {
		if step == s {
			return i + 1
		}
	}
	return 0
}

// Field returns the form field name a step collects.
func (s Step) Field() string {
	switch s {
	case StepUsername:
		return FieldUsername
	case StepEmail:
		return FieldEmail
	case StepPassword:
		return FieldPassword
	case StepConfirm:
		return FieldConfirm
	default:
		return ""
	}
}
