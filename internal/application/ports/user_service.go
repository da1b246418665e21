package ports

import (
	"context"

	"file-storage-api/internal/domain/user"
)

type UserService interface {
	CreateUser(ctx context.Context, u user.User, password string) (*user.User, error)
	FindUserByUsername(ctx context.Context, username string) (*user.User, error)
	FindUsers(ctx context.Context, page int) (user.Users, error)
	RecordLogin(ctx context.Context, id user.ID) error
}
