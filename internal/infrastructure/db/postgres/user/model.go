package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uuid.UUID
		Username     string
		Email        string
		PasswordHash string

		CreatedAt   time.Time
		LastLoginAt time.Time
	}
	Users []*User
)
