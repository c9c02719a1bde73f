package logistics

import "fmt"

// ErrUnknownResourceKind indicates a resource kind outside the catalogue
type ErrUnknownResourceKind struct {
	Kind string
}

func (e *ErrUnknownResourceKind) Error() string {
	return fmt.Sprintf("unknown resource kind: %q", e.Kind)
}

// ErrInvalidCapacity indicates a buffer was created with a non-positive capacity
type ErrInvalidCapacity struct {
	Capacity float64
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("buffer capacity must be positive, got %v", e.Capacity)
}

// ErrCollectionNotFound indicates a collection record was not found
type ErrCollectionNotFound struct {
	ID string
}

func (e *ErrCollectionNotFound) Error() string {
	return fmt.Sprintf("collection not found: %s", e.ID)
}
