package domain

import "errors"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// DatasetErr represents an invalid or unreadable pose dataset. It is only
// raised while the application starts.
type DatasetErr struct {
	domainErr
}

// NewDatasetErr creates a new DatasetErr with the given message.
func NewDatasetErr(message string) *DatasetErr {
	return &DatasetErr{
		domainErr: domainErr{message: message},
	}
}

// ErrKind is a stable, machine-readable classification of a plan failure.
type ErrKind string

const (
	ErrKindValidation ErrKind = "VALIDATION"
	ErrKindParse      ErrKind = "PARSE"
	ErrKindEmbedding  ErrKind = "EMBEDDING"
	ErrKindIndex      ErrKind = "INDEX"
	ErrKindInternal   ErrKind = "INTERNAL"
)

// PlanErr is an error raised while generating a plan.
type PlanErr struct {
	Kind    ErrKind
	message string
	err     error
}

// Error returns the error message, followed by the cause when present.
func (e *PlanErr) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}
	return e.message
}

// Unwrap returns the underlying cause.
func (e *PlanErr) Unwrap() error {
	return e.err
}

// NewValidationErr creates a PlanErr for an invalid request.
func NewValidationErr(message string) *PlanErr {
	return &PlanErr{Kind: ErrKindValidation, message: message}
}

// NewParseErr creates a PlanErr for a malformed dataset value.
func NewParseErr(message string, cause error) *PlanErr {
	return &PlanErr{Kind: ErrKindParse, message: message, err: cause}
}

// NewEmbeddingErr creates a PlanErr for a failed embedding call.
func NewEmbeddingErr(message string, cause error) *PlanErr {
	return &PlanErr{Kind: ErrKindEmbedding, message: message, err: cause}
}

// NewIndexErr creates a PlanErr for a failed index operation.
func NewIndexErr(message string, cause error) *PlanErr {
	return &PlanErr{Kind: ErrKindIndex, message: message, err: cause}
}

// KindOf classifies err. Errors that are not a PlanErr are INTERNAL and a nil
// error has no kind.
func KindOf(err error) ErrKind {
	if err == nil {
		return ""
	}
	var planErr *PlanErr
	if errors.As(err, &planErr) {
		return planErr.Kind
	}
	return ErrKindInternal
}
