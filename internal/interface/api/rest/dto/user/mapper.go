package user

import (
	"file-storage-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uDomain.ID,
		Username:  uDomain.Username,
		Email:     uDomain.Email,
		CreatedAt: uDomain.CreatedAt,
	}
	if !uDomain.LastLoginAt.IsZero() {
		t := uDomain.LastLoginAt
		u.LastLoginAt = &t
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(uRequest Request) user.User {
	return user.User{
		Username: uRequest.Username,
		Email:    uRequest.Email,
	}
}
