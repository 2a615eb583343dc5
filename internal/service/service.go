// Package service holds the business rules behind each endpoint: input
// validation, caching and one store operation per call.
package service

import (
	"errors"

	"socialpod/internal/models"
	"socialpod/internal/repository"
)

// storeError wraps a store failure as an internal error. Callers return the
// result unchanged.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return models.NewInternalError(err)
}

// requireID validates a path id.
func requireID(name, id string) error {
	if !models.ValidID(id) {
		return models.NewValidationError(name + " must be a valid id")
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
