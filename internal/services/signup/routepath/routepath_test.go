package routepath

import (
	"strings"
	"testing"

	"github.com/louisbranch/signup/internal/services/signup/wizard"
)

func TestForStep(t *testing.T) {
	tests := map[wizard.Step]string{
		wizard.StepUsername: Root,
		wizard.StepEmail:    Email,
		wizard.StepPassword: Password,
		wizard.StepConfirm:  PasswordConfirm,
		wizard.StepDone:     Root,
	}
	for step, want := range tests {
		if got := ForStep(step); got != want {
			t.Fatalf("ForStep(%s) = %q, want %q", step, got, want)
		}
	}
}

func TestEditForStep(t *testing.T) {
	tests := map[wizard.Step]string{
		wizard.StepUsername: UsernameEdit,
		wizard.StepEmail:    EmailEdit,
		wizard.StepPassword: PasswordEdit,
		wizard.StepConfirm:  "",
	}
	for step, want := range tests {
		if got := EditForStep(step); got != want {
			t.Fatalf("EditForStep(%s) = %q, want %q", step, got, want)
		}
	}
}

func TestWizardRoutesEndWithSlash(t *testing.T) {
	for _, path := range []string{Root, UsernameEdit, Email, EmailEdit, Password, PasswordEdit, PasswordConfirm} {
		if !strings.HasSuffix(path, "/") {
			t.Fatalf("%q should end with a slash", path)
		}
	}
}
