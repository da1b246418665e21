package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID          uuid.UUID  `json:"id"`
		Username    string     `json:"username"`
		Email       string     `json:"email"`
		CreatedAt   time.Time  `json:"created_at"`
		LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
