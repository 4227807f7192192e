// Package users persists new user rows. Implementations report uniqueness
// violations on email as common.ErrorAlreadyExists.
package users

import (
	"context"

	"github.com/amrit110/moonshot-ui/internal/models"
)

type Repository interface {
	// Create inserts user and fills in the fields assigned by the database.
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
