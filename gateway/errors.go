package gateway

// ErrorKind classifies gateway failures so handlers can decide what to
// surface to the caller.
type ErrorKind int

const (
	// KindRequestFailed covers transport and provider API errors.
	KindRequestFailed ErrorKind = iota
	// KindEmptyResponse means the provider returned no content.
	KindEmptyResponse
	// KindMalformedResponse means the content was not valid JSON. RawText
	// carries the model's output for manual recovery.
	KindMalformedResponse
	// KindInvalidShape means the JSON parsed but required fields were missing.
	KindInvalidShape
)

// Error is a gateway failure with a user-facing message. RawText is only set
// for malformed responses.
type Error struct {
	Kind    ErrorKind
	Message string
	RawText string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
