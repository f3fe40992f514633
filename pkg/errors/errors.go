package errors

import (
	"errors"
	"fmt"
)

type ResourceNotFoundError struct {
	resource string
	id       string
}

func (e *ResourceNotFoundError) Error() string {
	if e.id == "" {
		return fmt.Sprintf("%s not found", e.resource)
	}
	return fmt.Sprintf("%s %s not found", e.resource, e.id)
}

func NewResourceNotFoundError(resource, id string) error {
	return &ResourceNotFoundError{resource: resource, id: id}
}

func NewAlbumNotFoundError(index int) error {
	return NewResourceNotFoundError("album", fmt.Sprintf("%d", index))
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// InvalidCatalogError reports a catalog row that cannot be imported.
type InvalidCatalogError struct {
	row    int
	reason string
}

func (e *InvalidCatalogError) Error() string {
	return fmt.Sprintf("invalid catalog row %d: %s", e.row, e.reason)
}

func NewInvalidCatalogError(row int, reason string) error {
	return &InvalidCatalogError{row: row, reason: reason}
}

func IsInvalidCatalogError(err error) bool {
	var e *InvalidCatalogError
	return errors.As(err, &e)
}

// EmptyCatalogError is returned when navigation is requested on an empty catalog.
type EmptyCatalogError struct{}

func (e *EmptyCatalogError) Error() string {
	return "catalog is empty"
}

func NewEmptyCatalogError() error {
	return &EmptyCatalogError{}
}

func IsEmptyCatalogError(err error) bool {
	var e *EmptyCatalogError
	return errors.As(err, &e)
}
