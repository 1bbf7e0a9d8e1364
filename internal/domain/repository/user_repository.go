package repository

import (
	"context"

	"github.com/vidserve/backend/internal/domain/entity"
)

// UserRepository defines the persistence operations the user flows need.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByMobile(ctx context.Context, mobile string) (*entity.User, error)
	// FindIdentity loads the (user_id, email) projection; nil when absent.
	FindIdentity(ctx context.Context, userID string) (*entity.Identity, error)
	// Profile returns the stored record excluding _id, user_id and password.
	Profile(ctx context.Context, userID string) (map[string]any, error)
	// UpdateFields applies a $set of the given fields; returns matched count.
	UpdateFields(ctx context.Context, userID string, fields map[string]any) (int64, error)
}
