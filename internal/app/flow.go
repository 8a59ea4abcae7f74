package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"fittrack/internal/apierr"
	"fittrack/internal/domain"
)

// FlowStatus tags the outcome of a profile flow resolution.
type FlowStatus string

// The four reachable flow outcomes.
const (
	FlowUnauthenticated FlowStatus = "unauthenticated"
	FlowNeedsOnboarding FlowStatus = "needs_onboarding"
	FlowReady           FlowStatus = "ready"
	FlowBlocked         FlowStatus = "blocked"
)

// FlowState is the tagged result of resolving the profile flow. Profile is
// set exactly when Status is FlowReady; Message exactly when FlowBlocked.
// Build states through the constructors so those invariants hold.
type FlowState struct {
	Status  FlowStatus          `json:"status"`
	Profile *domain.UserProfile `json:"profile,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Unauthenticated is the state for requests without a usable session.
func Unauthenticated() FlowState {
	return FlowState{Status: FlowUnauthenticated}
}

// NeedsOnboarding is the state for provisioned accounts without a profile.
func NeedsOnboarding() FlowState {
	return FlowState{Status: FlowNeedsOnboarding}
}

// Ready is the state for accounts with a loaded profile.
func Ready(profile *domain.UserProfile) FlowState {
	return FlowState{Status: FlowReady, Profile: profile}
}

// Blocked is the state for any remote failure, carrying a message the UI
// can show next to a retry action.
func Blocked(message string) FlowState {
	return FlowState{Status: FlowBlocked, Message: message}
}

// Fallback messages for failures that carry no message of their own.
const (
	provisionFallbackMessage = "Unable to provision your account right now."
	loadFallbackMessage      = "Unable to load your profile right now."
)

// ProfileFlow resolves whether the current request is backed by a usable,
// provisioned, profiled account. Resolution is computed fresh on every call
// and never fails: every reachable error becomes a Blocked state.
type ProfileFlow struct {
	sessions domain.SessionSource
	profiles domain.ProfileAPI
	logger   *zap.Logger
}

// NewProfileFlow creates a flow resolver over the given collaborators.
func NewProfileFlow(sessions domain.SessionSource, profiles domain.ProfileAPI, logger *zap.Logger) *ProfileFlow {
	return &ProfileFlow{sessions: sessions, profiles: profiles, logger: logger}
}

// Resolve runs session lookup, provisioning, and profile fetch in order.
// The three calls are strictly sequential: each step's outcome decides
// whether the next runs at all. No retries; retry policy belongs to the
// caller.
func (f *ProfileFlow) Resolve(ctx context.Context) FlowState {
	sess, err := f.sessions.Session(ctx)
	if err != nil || !sess.Usable() {
		// Absence of a session is expected traffic, not an error path.
		return Unauthenticated()
	}

	if err := f.profiles.Provision(ctx, sess.Subject, sess.Email); err != nil {
		// Re-provisioning an existing account conflicts on every page
		// load; that is the steady state, not a failure.
		if !apierr.HasStatus(err, http.StatusConflict) {
			f.logger.Warn("provisioning failed", zap.Error(err))
			return Blocked(messageOrFallback(err, provisionFallbackMessage))
		}
	}

	profile, err := f.profiles.Get(ctx, sess.Subject)
	if err != nil {
		if apiErr, ok := apierr.As(err); ok && apiErr.IsNotFound() {
			return NeedsOnboarding()
		}
		f.logger.Warn("profile fetch failed", zap.Error(err))
		return Blocked(messageOrFallback(err, loadFallbackMessage))
	}

	return Ready(profile)
}

func messageOrFallback(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
