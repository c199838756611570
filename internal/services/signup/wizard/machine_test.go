package wizard

import (
	"net/url"
	"testing"
)

func TestNextTable(t *testing.T) {
	tests := []struct {
		step    Step
		outcome Outcome
		want    Transition
	}{
		{StepUsername, OutcomeValid, Transition{Next: StepEmail, Effect: EffectStore}},
		{StepEmail, OutcomeValid, Transition{Next: StepPassword, Effect: EffectStore}},
		{StepPassword, OutcomeValid, Transition{Next: StepConfirm, Effect: EffectStore}},
		{StepConfirm, OutcomeValid, Transition{Next: StepDone, Effect: EffectCommit}},
		{StepConfirm, OutcomeMismatch, Transition{Next: StepConfirm, Effect: EffectNone}},
		{StepUsername, OutcomeInvalid, Transition{Next: StepUsername, Effect: EffectNone}},
		{StepEmail, OutcomeInvalid, Transition{Next: StepEmail, Effect: EffectNone}},
		{StepPassword, OutcomeInvalid, Transition{Next: StepPassword, Effect: EffectNone}},
		{StepConfirm, OutcomeInvalid, Transition{Next: StepConfirm, Effect: EffectNone}},
	}
	for _, tc := range tests {
		t.Run(tc.step.String()+"/"+tc.outcome.String(), func(t *testing.T) {
			got, err := Next(tc.step, tc.outcome)
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("Next() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestNextRejectsUnknownTransitions(t *testing.T) {
	if _, err := Next(StepEmail, OutcomeMismatch); err == nil {
		t.Fatal("mismatch is only defined on confirm")
	}
	if _, err := Next(StepDone, OutcomeValid); err == nil {
		t.Fatal("done is terminal")
	}
	if _, err := Next(Step(0), OutcomeValid); err == nil {
		t.Fatal("zero step has no transitions")
	}
}

func TestValidSubmissionAdvancesExactlyOneStep(t *testing.T) {
	forms := map[Step]url.Values{
		StepUsername: {FieldUsername: {"alice"}},
		StepEmail:    {FieldEmail: {"alice@example.com"}},
		StepPassword: {FieldPassword: {"p1"}},
	}
	for step, form := range forms {
		decision, err := Decide(step, form, nil)
		if err != nil {
			t.Fatalf("Decide(%s) error = %v", step, err)
		}
		if decision.Outcome != OutcomeValid {
			t.Fatalf("Decide(%s) outcome = %s", step, decision.Outcome)
		}
		if got := decision.Transition.Next.Position(); got != step.Position()+1 {
			t.Fatalf("Decide(%s) next position = %d, want %d", step, got, step.Position()+1)
		}
		reg := Registration{}.Apply(step, decision.Result.Value)
		if reg.Value(step) != decision.Result.Value {
			t.Fatalf("Apply(%s) stored %q", step, reg.Value(step))
		}
	}
}

func TestDecideConfirm(t *testing.T) {
	matchesP1 := func(confirm string) bool { return confirm == "p1" }

	tests := []struct {
		name        string
		confirm     string
		wantOutcome Outcome
		wantNext    Step
		wantEffect  Effect
	}{
		{name: "match", confirm: "p1", wantOutcome: OutcomeValid, wantNext: StepDone, wantEffect: EffectCommit},
		{name: "mismatch", confirm: "p2", wantOutcome: OutcomeMismatch, wantNext: StepConfirm, wantEffect: EffectNone},
		{name: "missing", confirm: "", wantOutcome: OutcomeInvalid, wantNext: StepConfirm, wantEffect: EffectNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision, err := Decide(StepConfirm, url.Values{FieldConfirm: {tc.confirm}}, matchesP1)
			if err != nil {
				t.Fatalf("Decide() error = %v", err)
			}
			if decision.Outcome != tc.wantOutcome {
				t.Fatalf("Outcome = %s, want %s", decision.Outcome, tc.wantOutcome)
			}
			if decision.Transition.Next != tc.wantNext || decision.Transition.Effect != tc.wantEffect {
				t.Fatalf("Transition = %+v", decision.Transition)
			}
		})
	}
}

func TestDecideConfirmDoesNotCompareInvalidInput(t *testing.T) {
	called := false
	_, err := Decide(StepConfirm, url.Values{}, func(string) bool {
		called = true
		return true
	})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if called {
		t.Fatal("matcher must not run for a missing confirmation")
	}
}

func TestDecideConfirmWithoutMatcherIsMismatch(t *testing.T) {
	decision, err := Decide(StepConfirm, url.Values{FieldConfirm: {"p1"}}, nil)
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if decision.Outcome != OutcomeMismatch {
		t.Fatalf("Outcome = %s, want mismatch", decision.Outcome)
	}
}

func TestDecideRejectsDoneStep(t *testing.T) {
	if _, err := Decide(StepDone, url.Values{}, nil); err == nil {
		t.Fatal("expected error")
	}
}
