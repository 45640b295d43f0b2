package adapter

// BackendError is a failure the backend described itself via the JSON
// {error} payload. Message is the verbatim backend text and is meant
// to be shown to the user as is.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}
