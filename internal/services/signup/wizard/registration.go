package wizard

// Registration accumulates validated values for an in-progress signup.
//
// PasswordHash holds the credential produced from the password step, never
// the plaintext password.
type Registration struct {
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// Apply returns a copy of r with the field owned by step set to value.
// Steps that own no field leave the copy unchanged.
func (r Registration) Apply(step Step, value string) Registration {
	switch step {
	case StepUsername:
		r.Username = value
	case StepEmail:
		r.Email = value
	case StepPassword:
		r.PasswordHash = value
	}
	return r
}

// Has reports whether the value collected by step is present.
func (r Registration) Has(step Step) bool {
	switch step {
	case StepUsername:
		return r.Username != ""
	case StepEmail:
		return r.Email != ""
	case StepPassword:
		return r.PasswordHash != ""
	default:
		return false
	}
}

// Value returns the stored value for step.
func (r Registration) Value(step Step) string {
	switch step {
	case StepUsername:
		return r.Username
	case StepEmail:
		return r.Email
	case StepPassword:
		return r.PasswordHash
	default:
		return ""
	}
}

// Ready reports whether every step before step has been completed.
func (r Registration) Ready(step Step) bool {
	for _, prior := range FormSteps {
		if prior >= step {
			return true
		}
		if !r.Has(prior) {
			return false
		}
	}
	return true
}

// Resume returns the earliest step still missing its value.
func (r Registration) Resume() Step {
	for _, step := range FormSteps {
		if step == StepConfirm {
			return StepConfirm
		}
		if !r.Has(step) {
			return step
		}
	}
	return StepConfirm
}

// Complete reports whether the registration holds every collected value.
func (r Registration) Complete() bool {
	return r.Has(StepUsername) && r.Has(StepEmail) && r.Has(StepPassword)
}

// Empty reports whether nothing has been collected yet.
func (r Registration) Empty() bool {
	return r == Registration{}
}
