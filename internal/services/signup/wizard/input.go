package wizard

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Form field names.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldConfirm  = "confirm"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// ErrorCode names one field validation failure.
type ErrorCode string

const (
	CodeRequired ErrorCode = "required"
	CodeEmail    ErrorCode = "email"
	CodeTooLong  ErrorCode = "too_long"
)

// FieldError reports one validation failure on a form field.
type FieldError struct {
	Field string
	Code  ErrorCode
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Code)
}

// FieldErrors is the list of failures found on one submission.
type FieldErrors []FieldError

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for _, fe := range f {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// For returns the codes reported for field, in order.
func (f FieldErrors) For(field string) []ErrorCode {
	var codes []ErrorCode
	for _, fe := range f {
		if fe.Field == field {
			codes = append(codes, fe.Code)
		}
	}
	return codes
}

// Result is the outcome of validating one step's input: either the accepted
// value or the field errors that rejected it.
type Result struct {
	// Submitted is the raw value as posted, used to re-fill a rejected form.
	Submitted string
	// Value is the accepted value. Empty when Errors is non-empty.
	Value  string
	Errors FieldErrors
}

// OK reports whether the input was accepted.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

func accept(submitted, value string) Result {
	return Result{Submitted: submitted, Value: value}
}

func reject(submitted, field string, code ErrorCode) Result {
	return Result{Submitted: submitted, Errors: FieldErrors{{Field: field, Code: code}}}
}

// Input is one step's decoded form submission.
type Input interface {
	Step() Step
	Validate() Result
}

// UsernameInput carries the username step submission.
type UsernameInput struct {
	Username string
}

func (UsernameInput) Step() Step { return StepUsername }

// Validate requires a username that is not blank. The value is kept verbatim.
func (in UsernameInput) Validate() Result {
	if strings.TrimSpace(in.Username) == "" {
		return reject(in.Username, FieldUsername, CodeRequired)
	}
	return accept(in.Username, in.Username)
}

// EmailInput carries the email step submission.
type EmailInput struct {
	Email string
}

func (EmailInput) Step() Step { return StepEmail }

// Validate requires a plain addr-spec with a dotted domain. Surrounding
// whitespace makes the address invalid.
func (in EmailInput) Validate() Result {
	switch {
	case strings.TrimSpace(in.Email) == "":
		return reject(in.Email, FieldEmail, CodeRequired)
	case !validEmail(in.Email):
		return reject(in.Email, FieldEmail, CodeEmail)
	}
	return accept(in.Email, in.Email)
}

// PasswordInput carries the password step submission.
type PasswordInput struct {
	Password string
}

func (PasswordInput) Step() Step { return StepPassword }

// Validate keeps the password verbatim; whitespace-only counts as missing.
func (in PasswordInput) Validate() Result {
	switch {
	case strings.TrimSpace(in.Password) == "":
		return reject("", FieldPassword, CodeRequired)
	case len(in.Password) > MaxPasswordBytes:
		return reject("", FieldPassword, CodeTooLong)
	}
	return Result{Value: in.Password}
}

// ConfirmInput carries the confirmation step submission.
type ConfirmInput struct {
	Confirm string
}

func (ConfirmInput) Step() Step { return StepConfirm }

// Validate only requires presence; equality is decided against the stored
// password by the caller.
func (in ConfirmInput) Validate() Result {
	if strings.TrimSpace(in.Confirm) == "" {
		return reject("", FieldConfirm, CodeRequired)
	}
	return Result{Value: in.Confirm}
}

// DecodeInput builds the input struct for step from posted form values.
func DecodeInput(step Step, form url.Values) (Input, error) {
	switch step {
	case StepUsername:
		return UsernameInput{Username: form.Get(FieldUsername)}, nil
	case StepEmail:
		return EmailInput{Email: form.Get(FieldEmail)}, nil
	case StepPassword:
		return PasswordInput{Password: form.Get(FieldPassword)}, nil
	case StepConfirm:
		return ConfirmInput{Confirm: form.Get(FieldConfirm)}, nil
	default:
		return nil, fmt.Errorf("step %s takes no input", step)
	}
}

// Validate decodes and validates form for step.
func Validate(step Step, form url.Values) (Result, error) {
	input, err := DecodeInput(step, form)
	if err != nil {
		return Result{}, err
	}
	return input.Validate(), nil
}

func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	if at <= 0 || at == len(value)-1 {
		return false
	}
	domain := value[at+1:]
	if strings.HasPrefix(domain, "[") || !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") || strings.Contains(domain, "..") {
		return false
	}
	return true
}
