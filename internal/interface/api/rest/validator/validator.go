package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"file-storage-api/internal/interface/api/rest/dto/auth"
	"file-storage-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}

	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0, errors.New("invalid page")
	}

	return p, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateUser(r user.Request) map[string]string {
	errs := make(map[string]string)

	// Normalize
	username := strings.TrimSpace(r.Username)
	email := strings.ToLower(strings.TrimSpace(r.Email))

	// username (required + length + allowed chars)
	if username == "" {
		errs["username"] = "username is required"
	} else if !usernameRe.MatchString(username) {
		errs["username"] = "username must be 3–32 characters: letters, digits, '_', '.', '-'"
	}

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + length)
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(r.Username)
	password := r.Password

	if username == "" {
		errs["username"] = "username is required"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
