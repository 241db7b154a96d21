package booking

import "fmt"

// ServiceError codes. The code names the failure class; the message is the
// user-visible text.
const (
	CodeAuthenticationRequired = "AuthenticationRequired"
	CodeNotFound               = "NotFound"
	CodeUnauthorized           = "Unauthorized"
	CodeInvalidStateTransition = "InvalidStateTransition"
	CodeValidation             = "ValidationError"
)

// ServiceError is a typed failure surfaced to the HTTP layer with a fixed
// human-readable message.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrAuthenticationRequired = &ServiceError{Code: CodeAuthenticationRequired, Message: "You must be signed in to manage bookings"}
	ErrBookingNotFound        = &ServiceError{Code: CodeNotFound, Message: "Booking not found"}
	ErrUpdateForbidden        = &ServiceError{Code: CodeUnauthorized, Message: "You don't have permission to update this booking"}
	ErrCancelForbidden        = &ServiceError{Code: CodeUnauthorized, Message: "You can only cancel your own bookings"}
	ErrCancelTerminal         = &ServiceError{Code: CodeInvalidStateTransition, Message: "Cannot cancel a booking that is already completed or cancelled"}
)

// NewInvalidTransitionError builds the failure for a status change the
// lifecycle does not allow.
func NewInvalidTransitionError(from, to string) *ServiceError {
	return &ServiceError{
		Code:    CodeInvalidStateTransition,
		Message: fmt.Sprintf("Cannot change booking status from %s to %s", from, to),
	}
}

// NewValidationError builds a malformed-input failure.
func NewValidationError(msg string) *ServiceError {
	return &ServiceError{Code: CodeValidation, Message: msg}
}

// AsServiceError unwraps err into a *ServiceError if it is one.
func AsServiceError(err error) (*ServiceError, bool) {
	se, ok := err.(*ServiceError)
	return se, ok
}
