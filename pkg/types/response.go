package types

// SuccessEnvelope wraps every successful API response. Message carries the
// single user-visible confirmation the operation produced, if any.
type SuccessEnvelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
