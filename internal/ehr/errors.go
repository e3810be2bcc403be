package ehr

import (
	"errors"
	"fmt"
)

// ErrorCategory defines the normalized failure taxonomy for vendor errors.
//
// All vendor clients classify failures with these categories so callers can
// reason about failures uniformly regardless of the backend's protocol family.
type ErrorCategory string

const (
	// ErrorTimeout indicates the vendor took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the vendor returned invalid/malformed data
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates credential or permission issues
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorVendorOutage indicates the vendor backend is unavailable
	ErrorVendorOutage ErrorCategory = "vendor_outage"

	// ErrorNotFound indicates the requested record doesn't exist
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited indicates too many requests
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorRejected indicates the vendor refused the request payload
	ErrorRejected ErrorCategory = "rejected"

	// ErrorInternal indicates an unexpected internal error
	ErrorInternal ErrorCategory = "internal"
)

// Error wraps vendor failures with normalized categorization. The message is
// what callers surface verbatim, so clients keep it self-contained.
type Error struct {
	Category   ErrorCategory
	Vendor     string
	Message    string
	Underlying error
	Retryable  bool
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewError creates a normalized vendor error with automatic retry
// classification. Timeouts, outages and rate limits are transient; bad data,
// auth failures and rejections are permanent.
func NewError(category ErrorCategory, vendorName, message string, underlying error) *Error {
	retryable := category == ErrorTimeout ||
		category == ErrorVendorOutage ||
		category == ErrorRateLimited

	return &Error{
		Category:   category,
		Vendor:     vendorName,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// GetCategory extracts the error category from an error.
func GetCategory(err error) ErrorCategory {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Category
	}
	return ErrorInternal
}

// IsRetryable reports whether an error is worth retrying.
func IsRetryable(err error) bool {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Retryable
	}
	return false
}

// Sentinel errors for registry-level failures, distinct from Error which
// wraps individual backend failures.
var (
	// ErrUnsupportedVendor means a tenant is configured with a vendor type
	// the registry has no factory for.
	ErrUnsupportedVendor = errors.New("unsupported vendor type")
)

func statusMessage(vendorName string, status int) string {
	return fmt.Sprintf("%s returned status %d", vendorName, status)
}
