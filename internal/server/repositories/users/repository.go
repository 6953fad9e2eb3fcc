package users

import (
	"context"

	"github.com/vkazmin/accountd/internal/server/models"
)

// Repository is the credential store accessor. A lookup miss is reported as
// common.ErrUserNotFound; an insert that would duplicate an email is reported
// as common.ErrEmailAlreadyExists, distinct from generic I/O failure.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
