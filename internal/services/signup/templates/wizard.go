package templates

import "github.com/louisbranch/signup/internal/services/signup/wizard"

// SummaryItem is one collected value shown next to later steps.
type SummaryItem struct {
	Step    wizard.Step
	Value   string
	EditURL string
}

// StepView is everything a step form needs to render.
type StepView struct {
	Step wizard.Step
	// Edit selects the edit variant of the page title.
	Edit   bool
	Action string
	// Value pre-fills the step's input. Password inputs are never pre-filled.
	Value  string
	Errors wizard.FieldErrors
	// PageErrorKey is a page-level message shown above the form.
	PageErrorKey string
	Summary      []SummaryItem
}

// StepTitleKey returns the catalog key for the step page title.
func StepTitleKey(step wizard.Step, edit bool) string {
	if edit && step != wizard.StepConfirm {
		return "wizard.step." + step.String() + ".edit_title"
	}
	return "wizard.step." + step.String() + ".title"
}

// ErrorKey returns the catalog key describing code.
func ErrorKey(code wizard.ErrorCode) string {
	return "wizard.error." + string(code)
}

func fieldLabelKey(step wizard.Step) string {
	return "wizard.field." + step.Field()
}

func fieldErrorsID(step wizard.Step) string {
	return step.Field() + "-errors"
}

func submitKey(step wizard.Step) string {
	if step == wizard.StepConfirm {
		return "wizard.action.confirm"
	}
	return "wizard.action.next"
}

func inputType(step wizard.Step) string {
	switch step {
	case wizard.StepEmail:
		return "email"
	case wizard.StepPassword, wizard.StepConfirm:
		return "password"
	default:
		return "text"
	}
}

func inputAutocomplete(step wizard.Step) string {
	switch step {
	case wizard.StepEmail:
		return "email"
	case wizard.StepPassword, wizard.StepConfirm:
		return "new-password"
	default:
		return "username"
	}
}

// prefillValue returns the value to pre-fill; secrets are never echoed.
func prefillValue(view StepView) string {
	if view.Step == wizard.StepUsername || view.Step == wizard.StepEmail {
		return view.Value
	}
	return ""
}

func summaryValue(item SummaryItem) string {
	if item.Step == wizard.StepPassword {
		return "••••••••"
	}
	return item.Value
}
