package llmclient

import "fmt"

// SDKError is the base error type for all client errors.
type SDKError struct {
	Message string
	Cause   error
}

func (e *SDKError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SDKError) Unwrap() error {
	return e.Cause
}

// ConfigurationError reports a problem detected before any network attempt,
// such as a missing API key. It is never folded into the backend category.
type ConfigurationError struct{ SDKError }

// BackendError reports a non-success HTTP response from the completion
// endpoint. The response body becomes the message.
type BackendError struct {
	SDKError
	StatusCode int
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend request failed (status=%d): %s", e.StatusCode, e.Message)
}

// NetworkError reports a transport-level failure before a status code was
// received.
type NetworkError struct{ SDKError }

// EmptyResponseError reports a well-formed envelope carrying no choices.
type EmptyResponseError struct{ SDKError }

// DecodeError reports model output that failed schema validation or strict
// deserialization into the target type.
type DecodeError struct{ SDKError }

// IsConfigurationError reports whether err is a configuration failure that
// occurred before any network attempt.
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// IsBackendError reports whether err belongs to the opaque backend failure
// category: transport failure, non-2xx status, empty choice list, or
// malformed model output. Callers branch on this only for diagnostics; the
// members are not distinguished for control flow.
func IsBackendError(err error) bool {
	switch err.(type) {
	case *BackendError, *NetworkError, *EmptyResponseError, *DecodeError:
		return true
	default:
		return false
	}
}

// IsRetryable reports whether the error is safe to retry. Used only by the
// opt-in retry middleware; the core never retries.
func IsRetryable(err error) bool {
	switch e := err.(type) {
	case *NetworkError:
		return true
	case *BackendError:
		switch e.StatusCode {
		case 408, 429, 500, 502, 503, 504:
			return true
		}
		return false
	default:
		return false
	}
}
