package models

// Typed errors for the review pipeline. helper.HTTPHelper maps these to HTTP
// status codes by their concrete type name.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

// ErrorStatus means the operation is invalid for the target's current state,
// e.g. reviewing a non-pending submission or publishing a non-approved
// suggestion. It is also returned when a concurrent reviewer won the race.
type ErrorStatus struct {
	Message string
}

func (e ErrorStatus) Error() string {
	return e.Message
}

type ErrorDuplicateURL struct {
	URL string
}

func (e ErrorDuplicateURL) Error() string {
	return "production url already in use: " + e.URL
}

type ErrorAlreadyPublished struct {
	Message string
}

func (e ErrorAlreadyPublished) Error() string {
	return e.Message
}

// ErrorInternalServer wraps the cause of an unexpected failure after the
// transaction has begun; the transaction is rolled back before it is returned.
type ErrorInternalServer struct {
	Message string
	Cause   error
}

func (e ErrorInternalServer) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e ErrorInternalServer) Unwrap() error {
	return e.Cause
}
