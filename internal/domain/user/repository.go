package user

import (
	"context"
)

type Repository interface {
	CreateUser(ctx context.Context, req User) (*User, error)
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
	FetchUsers(ctx context.Context, page int) (Users, error)
	TouchLastLogin(ctx context.Context, id ID) error
}
