package httpclient

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed    = errors.New("httpclient: request failed")
	ErrServiceError     = errors.New("httpclient: service error")
	ErrDecodeResponse   = errors.New("httpclient: failed to decode response")
	ErrCreateRequest    = errors.New("httpclient: failed to create request")
	ErrResponseTooLarge = errors.New("httpclient: response body too large")
	ErrInvalidProxy     = errors.New("httpclient: invalid proxy url")
)

type ServiceError struct {
	StatusCode int
	// Code is the body's "code" member, 0 when absent.
	Code      int
	Message   string
	RequestID string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("httpclient: service returned status %d", e.StatusCode)
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(target, ErrServiceError)
}

func (e *ServiceError) Unwrap() error {
	return ErrServiceError
}

func NewServiceError(statusCode, code int, message, requestID string) *ServiceError {
	return &ServiceError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		RequestID:  requestID,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}

	return nil, false
}
