package wizard

import (
	"fmt"
	"net/url"
)

// Outcome classifies a step submission.
type Outcome int

const (
	OutcomeValid Outcome = iota + 1
	OutcomeInvalid
	// OutcomeMismatch is a well-formed confirmation that differs from the
	// stored password.
	OutcomeMismatch
)

func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Effect is the side effect a transition asks the caller to perform.
type Effect int

const (
	// EffectNone leaves the registration untouched.
	EffectNone Effect = iota
	// EffectStore writes the accepted value into the registration.
	EffectStore
	// EffectCommit persists the user and discards the registration.
	EffectCommit
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectStore:
		return "store"
	case EffectCommit:
		return "commit"
	default:
		return fmt.Sprintf("effect(%d)", int(e))
	}
}

// Transition is the state machine's answer for (step, outcome).
type Transition struct {
	Next   Step
	Effect Effect
}

type transitionKey struct {
	step    Step
	outcome Outcome
}

// transitions is the complete wizard table. Invalid outcomes are not listed:
// they always stay on the same step with no effect.
var transitions = map[transitionKey]Transition{
	{StepUsername, OutcomeValid}:   {Next: StepEmail, Effect: EffectStore},
	{StepEmail, OutcomeValid}:      {Next: StepPassword, Effect: EffectStore},
	{StepPassword, OutcomeValid}:   {Next: StepConfirm, Effect: EffectStore},
	{StepConfirm, OutcomeValid}:    {Next: StepDone, Effect: EffectCommit},
	{StepConfirm, OutcomeMismatch}: {Next: StepConfirm, Effect: EffectNone},
}

// Next looks up the transition for a step outcome.
func Next(step Step, outcome Outcome) (Transition, error) {
	if step < StepUsername || step > StepConfirm {
		return Transition{}, fmt.Errorf("step %s has no transitions", step)
	}
	if outcome == OutcomeInvalid {
		return Transition{Next: step, Effect: EffectNone}, nil
	}
	transition, ok := transitions[transitionKey{step: step, outcome: outcome}]
	if !ok {
		return Transition{}, fmt.Errorf("no transition for %s on %s", outcome, step)
	}
	return transition, nil
}

// Decision bundles validation and transition for one submission.
type Decision struct {
	Step       Step
	Outcome    Outcome
	Result     Result
	Transition Transition
}

// Decide validates form for step and resolves the transition. For the
// confirm step, matches is asked whether the accepted confirmation equals the
// stored password; it is not called for invalid input.
func Decide(step Step, form url.Values, matches func(confirm string) bool) (Decision, error) {
	result, err := Validate(step, form)
	if err != nil {
		return Decision{}, err
	}

	outcome := OutcomeValid
	switch {
	case !result.OK():
		outcome = OutcomeInvalid
	case step == StepConfirm:
		if matches == nil || !matches(result.Value) {
			outcome = OutcomeMismatch
		}
	}

	transition, err := Next(step, outcome)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Step: step, Outcome: outcome, Result: result, Transition: transition}, nil
}
