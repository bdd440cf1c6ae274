package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// ErrUpstream is returned when the catalog API answers with a non-success status.
type ErrUpstream struct {
	Endpoint   string
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *ErrUpstream) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream %s returned status %d", e.Endpoint, e.StatusCode)
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstream) Is(target error) bool {
	_, ok := target.(*ErrUpstream)
	return ok
}

// ErrNoRecommendation is returned by the quiz when a code has no mapped title
// or the mapped title yields no search result.
type ErrNoRecommendation struct {
	Code  string
	Title string
}

// Error implements the error interface.
func (e *ErrNoRecommendation) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("no anime found for recommended title %q", e.Title)
	}
	return fmt.Sprintf("no recommendation for answers %q", e.Code)
}

// Is allows for error checking with errors.Is().
func (e *ErrNoRecommendation) Is(target error) bool {
	_, ok := target.(*ErrNoRecommendation)
	return ok
}
