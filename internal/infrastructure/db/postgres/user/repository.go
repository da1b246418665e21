package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "file-storage-api/internal/domain/user"
	"file-storage-api/internal/infrastructure/db/postgres"
)

var ErrUsernameAlreadyExists = errors.New("username already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Username, req.Email, req.PasswordHash,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.LastLoginAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUsernameAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, id).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByUsername, username).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUsers(ctx context.Context, page int) (domain.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.PasswordHash,
			&u.CreatedAt,
			&u.LastLoginAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) TouchLastLogin(ctx context.Context, id domain.ID) error {
	_, err := r.db.Exec(ctx, UpdateLastLogin, id)
	return err
}
