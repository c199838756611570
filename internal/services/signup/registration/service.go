package registration

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/louisbranch/signup/internal/platform/logging"
	"github.com/louisbranch/signup/internal/services/signup/credential"
	apperrors "github.com/louisbranch/signup/internal/services/signup/platform/errors"
	"github.com/louisbranch/signup/internal/services/signup/storage"
	"github.com/louisbranch/signup/internal/services/signup/wizard"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/signup/internal/services/signup/registration"

// stepOutcome reports what one submission did.
type stepOutcome struct {
	Decision     wizard.Decision
	Registration wizard.Registration
	// User is set when the submission completed the registration.
	User *storage.User
}

// service executes wizard steps against a Visit.
type service struct {
	users  storage.UserRepository
	hasher credential.Hasher
	tracer trace.Tracer
	logger *slog.Logger
}

func newService(users storage.UserRepository, hasher credential.Hasher, logger *slog.Logger) service {
	return service{
		users:  users,
		hasher: hasher,
		tracer: otel.Tracer(tracerName),
		logger: logging.OrDiscard(logger),
	}
}

// start discards any registration and stores an empty one.
func (s service) start(ctx context.Context, visit *Visit) error {
	if err := visit.Reset(ctx); err != nil {
		return fmt.Errorf("start registration: %w", err)
	}
	return nil
}

// submit validates form for step against reg and applies the transition.
func (s service) submit(ctx context.Context, visit *Visit, reg wizard.Registration, step wizard.Step, form url.Values) (stepOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "registration.submit", trace.WithAttributes(
		attribute.String("signup.step", step.String()),
	))
	defer span.End()

	var matchErr error
	matches := func(confirm string) bool {
		if reg.PasswordHash == "" {
			return false
		}
		ok, err := s.hasher.Matches(reg.PasswordHash, confirm)
		if err != nil {
			matchErr = err
			return false
		}
		return ok
	}

	decision, err := wizard.Decide(step, form, matches)
	if err == nil {
		err = matchErr
	}
	if err != nil {
		return stepOutcome{}, recordError(span, fmt.Errorf("decide %s: %w", step, err))
	}
	span.SetAttributes(
		attribute.String("signup.outcome", decision.Outcome.String()),
		attribute.String("signup.effect", decision.Transition.Effect.String()),
	)

	out := stepOutcome{Decision: decision, Registration: reg}
	switch decision.Transition.Effect {
	case wizard.EffectStore:
		value := decision.Result.Value
		if step == wizard.StepPassword {
			hash, err := s.hasher.Hash(value)
			if err != nil {
				return stepOutcome{}, recordError(span, err)
			}
			value = hash
		}
		out.Registration = reg.Apply(step, value)
		if err := visit.Save(ctx, out.Registration); err != nil {
			return stepOutcome{}, recordError(span, err)
		}
	case wizard.EffectCommit:
		user, err := s.commit(ctx, visit, reg)
		if err != nil {
			return stepOutcome{}, recordError(span, err)
		}
		out.User = &user
		out.Registration = wizard.Registration{}
	}
	return out, nil
}

// commit persists reg as a user and clears the visit. A failed insert keeps
// the registration so the visitor can retry.
func (s service) commit(ctx context.Context, visit *Visit, reg wizard.Registration) (storage.User, error) {
	ctx, span := s.tracer.Start(ctx, "registration.commit")
	defer span.End()

	if !reg.Complete() {
		return storage.User{}, recordError(span, apperrors.EK(apperrors.KindInvalidInput, "wizard.notice.restart", "registration is incomplete"))
	}
	user, err := s.users.CreateUser(ctx, storage.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: reg.PasswordHash,
	})
	if err != nil {
		return storage.User{}, recordError(span, apperrors.Wrap(apperrors.KindUnknown, "error.internal.body", fmt.Errorf("commit registration: %w", err)))
	}
	span.SetAttributes(attribute.Int64("signup.user_id", user.ID))

	if err := visit.Clear(ctx); err != nil {
		// The user row exists; the stale registration expires with its session.
		s.logger.WarnContext(ctx, "clear completed registration", "session_id", visit.SessionID, "error", err)
	}
	return user, nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
