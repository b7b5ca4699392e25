package otplogin

import (
	"context"

	"laundry-king/internal/common/logger"
)

// Step is the login flow state.
type Step string

const (
	StepPhoneEntry    Step = "PHONE_ENTRY"
	StepCodeEntry     Step = "CODE_ENTRY"
	StepAuthenticated Step = "AUTHENTICATED"
)

// Authenticator is the backend contract for the two OTP endpoints.
type Authenticator interface {
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, otp string) error
}

// Dependencies wires the flow to its collaborators.
type Dependencies struct {
	Auth   Authenticator
	Logger logger.Logger

	// OnSuccess is invoked exactly once when verification succeeds; the
	// owning shell uses it to flip its logged-in flag and close the modal.
	OnSuccess func()

	// Notify surfaces a user-visible message. Optional.
	Notify func(message string)
}
