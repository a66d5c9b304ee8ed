package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNetwork indicates the endpoint could not be reached
	ErrNetwork = errors.New("network error")

	// ErrServer indicates the endpoint answered with a non-success status
	ErrServer = errors.New("server error")

	// ErrMalformedResponse indicates a success status with an unusable body
	ErrMalformedResponse = errors.New("malformed server response")

	// ErrValidation indicates a local precondition failed before any request
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrUserExists indicates a registration with an email already taken
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials indicates a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// GenericNetworkMessage is shown when a transport failure carries nothing better
const GenericNetworkMessage = "Network error: could not reach the server. Please try again."

// NetworkError is a transport-level failure reaching the endpoint.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return GenericNetworkMessage }

func (e *NetworkError) Unwrap() []error { return []error{ErrNetwork, e.Err} }

// ServerError is a non-2xx answer. Message comes from the response body when present.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return GenericNetworkMessage
}

func (e *ServerError) Unwrap() error { return ErrServer }

// MalformedResponseError is a 2xx answer whose body does not have the expected shape.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	if e.Reason == "" {
		return ErrMalformedResponse.Error()
	}
	return ErrMalformedResponse.Error() + ": " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return ErrMalformedResponse }

// ValidationError names the draft fields that failed local checks.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ErrorMessage returns the text a view should display for err
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return GenericNetworkMessage
	}
	return err.Error()
}
