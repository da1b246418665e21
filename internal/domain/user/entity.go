package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   = uuid.UUID
	User struct {
		ID           ID
		Username     string
		Email        string
		PasswordHash string

		CreatedAt   time.Time
		LastLoginAt time.Time
	}
	Users []*User
)
