package apperrors

// Kind classifies a business-rule rejection so the HTTP boundary can map
// it to a status code without string matching.
type Kind string

const (
	KindDuplicateName Kind = "duplicate_name"
	KindNotFound      Kind = "not_found"
)

// BusinessError is an expected business-rule rejection, distinct from an
// infrastructure fault. It reaches the client as a 422 with its message.
type BusinessError struct {
	Kind    Kind
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// NewDuplicateName reports that a product name is already taken.
func NewDuplicateName(message string) *BusinessError {
	return &BusinessError{Kind: KindDuplicateName, Message: message}
}

// NewNotFound reports that the record a mutation targets does not exist.
func NewNotFound(message string) *BusinessError {
	return &BusinessError{Kind: KindNotFound, Message: message}
}
