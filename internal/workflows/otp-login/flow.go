// Package otplogin implements the two-step OTP login flow:
// PHONE_ENTRY -> CODE_ENTRY -> AUTHENTICATED. Verification only flips the
// shell's cosmetic logged-in flag; it does not gate order submission.
package otplogin

import (
	"context"
	"strings"

	stderrors "laundry-king/internal/common/errors"
	"laundry-king/internal/common/logger"
	"laundry-king/internal/common/metrics"
)

// phoneLength is the exact digit count required before a code is requested.
const phoneLength = 10

// Flow is the login state machine. Not safe for concurrent use; all calls
// happen on the single interaction goroutine.
type Flow struct {
	auth      Authenticator
	logger    logger.Logger
	onSuccess func()
	notify    func(string)

	step  Step
	phone string
	code  string

	sending   bool
	verifying bool
}

func NewFlow(deps Dependencies) *Flow {
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	notify := deps.Notify
	if notify == nil {
		notify = func(string) {}
	}
	onSuccess := deps.OnSuccess
	if onSuccess == nil {
		onSuccess = func() {}
	}

	return &Flow{
		auth:      deps.Auth,
		logger:    log.WithFields(map[string]interface{}{"workflow": "otp-login"}),
		onSuccess: onSuccess,
		notify:    notify,
		step:      StepPhoneEntry,
	}
}

func (f *Flow) Step() Step {
	return f.step
}

func (f *Flow) Phone() string {
	return f.phone
}

func (f *Flow) Code() string {
	return f.code
}

// Sending reports the in-flight guard for the send-OTP call; the UI disables
// its trigger while true.
func (f *Flow) Sending() bool {
	return f.sending
}

// Verifying reports the in-flight guard for the verify call.
func (f *Flow) Verifying() bool {
	return f.verifying
}

// InputPhone normalizes the raw field value on every keystroke: non-digits
// are stripped and the result is capped at 10 characters.
func (f *Flow) InputPhone(raw string) {
	f.phone = normalizePhone(raw)
}

// InputCode stores the entered code as-is; no local format check.
func (f *Flow) InputCode(raw string) {
	f.code = raw
}

// RequestCode validates the phone locally and asks the backend to issue a
// one-time code. A short phone never reaches the network.
func (f *Flow) RequestCode(ctx context.Context) error {
	if f.sending || f.step != StepPhoneEntry {
		return nil
	}

	if len(f.phone) != phoneLength {
		err := stderrors.NewInvalidPhoneError(f.phone)
		f.notify(err.Message)
		return err
	}

	f.sending = true
	defer func() { f.sending = false }()

	if err := f.auth.SendOTP(ctx, f.phone); err != nil {
		f.logger.Error("failed to send OTP", map[string]interface{}{
			"phone": maskPhone(f.phone),
			"error": err.Error(),
		})
		metrics.OTPRequests.WithLabelValues(metrics.StatusFailed).Inc()
		stdErr := stderrors.NewOTPSendFailedError(err)
		f.notify(stdErr.Message)
		return stdErr
	}

	metrics.OTPRequests.WithLabelValues(metrics.StatusOK).Inc()
	f.step = StepCodeEntry
	return nil
}

// VerifyCode submits the phone and code for verification. On success the
// flow reaches AUTHENTICATED and notifies the owning shell.
func (f *Flow) VerifyCode(ctx context.Context) error {
	if f.verifying || f.step != StepCodeEntry {
		return nil
	}

	f.verifying = true
	defer func() { f.verifying = false }()

	if err := f.auth.VerifyOTP(ctx, f.phone, f.code); err != nil {
		f.logger.Warn("OTP verification failed", map[string]interface{}{
			"phone": maskPhone(f.phone),
			"error": err.Error(),
		})
		metrics.OTPVerifications.WithLabelValues(metrics.StatusFailed).Inc()
		stdErr := stderrors.NewOTPVerifyFailedError(err)
		f.notify(stdErr.Message)
		return stdErr
	}

	metrics.OTPVerifications.WithLabelValues(metrics.StatusOK).Inc()
	f.step = StepAuthenticated
	f.logger.Info("login successful", map[string]interface{}{
		"phone": maskPhone(f.phone),
	})
	f.onSuccess()
	return nil
}

// Cancel discards the entered code and returns to PHONE_ENTRY; the phone
// value is retained.
func (f *Flow) Cancel() {
	if f.step != StepCodeEntry {
		return
	}
	f.code = ""
	f.step = StepPhoneEntry
}

func normalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == phoneLength {
			break
		}
	}
	return b.String()
}

// maskPhone keeps the last 4 digits for logs.
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
