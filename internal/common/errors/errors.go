// Package errors provides standardized error handling for the ordering workflows.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Client-side workflow errors
const (
	// Validation errors (local, no external call is attempted)
	ErrCodeInvalidPhone ErrorCode = "INVALID_PHONE"

	// Capability errors (device geolocation)
	ErrCodeGeolocationUnsupported ErrorCode = "GEOLOCATION_UNSUPPORTED"
	ErrCodeGeolocationFailed      ErrorCode = "GEOLOCATION_FAILED"

	// External call failures (backend endpoints)
	ErrCodeOTPSendFailed     ErrorCode = "OTP_SEND_FAILED"
	ErrCodeOTPVerifyFailed   ErrorCode = "OTP_VERIFY_FAILED"
	ErrCodeOrderSubmitFailed ErrorCode = "ORDER_SUBMIT_FAILED"

	// Reverse-geocoding is degrade-not-fail: its failures are never surfaced
	// as errors, this code only shows up in debug logs.
	ErrCodeGeocodeLookupFailed ErrorCode = "GEOCODE_LOOKUP_FAILED"
)

// Server-side errors (development backend)
const (
	ErrCodeInvalidOTP       ErrorCode = "INVALID_OTP"
	ErrCodeOTPExpired       ErrorCode = "OTP_EXPIRED"
	ErrCodeOTPStoreFailed   ErrorCode = "OTP_STORE_FAILED"
	ErrCodePayloadInvalid   ErrorCode = "PAYLOAD_INVALID"
	ErrCodeRegistryInvalid  ErrorCode = "CATALOG_REGISTRY_INVALID"
	ErrCodeNotificationSend ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// ErrorCategory classifies errors per the workflow error taxonomy.
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "validation"
	CategoryCapability ErrorCategory = "capability"
	CategoryExternal   ErrorCategory = "external"
	CategoryInternal   ErrorCategory = "internal"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Category  ErrorCategory          `json:"category"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// IsValidation reports whether err is a local validation error, meaning no
// external call was attempted.
func IsValidation(err error) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Category == CategoryValidation
}

// IsCapability reports whether err came from a missing or failing device
// capability (geolocation).
func IsCapability(err error) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Category == CategoryCapability
}

// IsExternal reports whether err is a failed backend call; the user may
// retry manually with all entered data intact.
func IsExternal(err error) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Category == CategoryExternal
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidPhoneError creates a local validation error for a phone number
// that is not exactly 10 digits.
func NewInvalidPhoneError(phone string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPhone,
		Category:  CategoryValidation,
		Message:   "Please enter a valid 10-digit phone number.",
		Details:   fmt.Sprintf("got %d digits", len(phone)),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGeolocationUnsupportedError creates a capability error for a missing
// geolocation provider.
func NewGeolocationUnsupportedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGeolocationUnsupported,
		Category:  CategoryCapability,
		Message:   "Geolocation is not supported on this device",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGeolocationFailedError creates a capability error covering permission
// denied, unavailable and timeout; the design lumps all three into one
// generic user-facing message.
func NewGeolocationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGeolocationFailed,
		Category:  CategoryCapability,
		Message:   "Unable to retrieve your location",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOTPSendFailedError creates a retryable external-call error.
func NewOTPSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOTPSendFailed,
		Category:  CategoryExternal,
		Message:   "Failed to send OTP. Please try again.",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewOTPVerifyFailedError creates a retryable external-call error.
func NewOTPVerifyFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOTPVerifyFailed,
		Category:  CategoryExternal,
		Message:   "Invalid OTP. Please try again.",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewOrderSubmitFailedError creates a retryable external-call error; the
// composed order is preserved so resubmission needs no re-entry.
func NewOrderSubmitFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOrderSubmitFailed,
		Category:  CategoryExternal,
		Message:   "Failed to submit order. Please try again.",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidOTPError creates a non-retryable verification error.
func NewInvalidOTPError(phone string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidOTP,
		Category:  CategoryValidation,
		Message:   "The verification code does not match",
		Details:   fmt.Sprintf("phone: %s", phone),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOTPExpiredError creates a non-retryable verification error for codes
// past their TTL or never issued.
func NewOTPExpiredError(phone string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOTPExpired,
		Category:  CategoryValidation,
		Message:   "No active verification code for this number",
		Details:   fmt.Sprintf("phone: %s", phone),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOTPStoreFailedError creates a retryable store error.
func NewOTPStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOTPStoreFailed,
		Category:  CategoryInternal,
		Message:   "Failed to persist verification code",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPayloadInvalidError creates a non-retryable request validation error.
func NewPayloadInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePayloadInvalid,
		Category:  CategoryValidation,
		Message:   "Order payload failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryInvalidError creates a non-retryable catalog registry error.
func NewRegistryInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryInvalid,
		Category:  CategoryInternal,
		Message:   "Catalog registry failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendError creates a retryable delivery error.
func NewNotificationSendError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSend,
		Category:  CategoryExternal,
		Message:   "Failed to deliver notification",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
