package censys

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/andyle182810/censys/httpclient"
)

var (
	ErrConfiguration   = errors.New("censys: invalid configuration")
	ErrInvalidArgument = errors.New("censys: invalid argument")

	ErrAPI                 = errors.New("censys: api error")
	ErrAuthentication      = errors.New("censys: authentication failed")
	ErrForbidden           = errors.New("censys: forbidden")
	ErrNotFound            = errors.New("censys: not found")
	ErrRateLimited         = errors.New("censys: rate limited")
	ErrInternalServerError = errors.New("censys: internal server error")

	ErrRequestFailed    = httpclient.ErrRequestFailed
	ErrDecodeResponse   = httpclient.ErrDecodeResponse
	ErrResponseTooLarge = httpclient.ErrResponseTooLarge
)

// Error is returned for every non-200 response. Kind is one of the Err*
// sentinels above; errors.Is matches both Kind and ErrAPI.
type Error struct {
	Kind       error
	StatusCode int
	Message    string
	// Code is the "code" member of the error body, 0 when absent.
	Code      int
	RequestID string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("%s (status %d)", e.Kind, e.StatusCode)
}

func (e *Error) Is(target error) bool {
	return target == ErrAPI || target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// KindForStatus maps a response status to its error kind. 302 is an
// authentication failure because redirects are never followed.
func KindForStatus(statusCode int) error {
	switch statusCode {
	case http.StatusFound:
		return ErrAuthentication
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrAPI
	}
}

func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

func fromTransportError(err error) error {
	svcErr, ok := httpclient.IsServiceError(err)
	if !ok {
		return err
	}

	return &Error{
		Kind:       KindForStatus(svcErr.StatusCode),
		StatusCode: svcErr.StatusCode,
		Message:    svcErr.Message,
		Code:       svcErr.Code,
		RequestID:  svcErr.RequestID,
	}
}
