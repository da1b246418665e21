package user

const (
	SelectUsers = `
		SELECT id, username, email, password_hash, created_at, last_login_at
		FROM users
		ORDER BY created_at
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectUserByID = `
		SELECT id, username, email, password_hash, created_at, last_login_at
		FROM users
		WHERE id = $1
	`
	SelectUserByUsername = `
		SELECT id, username, email, password_hash, created_at, last_login_at
		FROM users
		WHERE username = $1
	`
	InsertUser = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING
		  id, username, email, password_hash, created_at, last_login_at
	`
	UpdateLastLogin = `
		UPDATE users
		SET last_login_at = now()
		WHERE id = $1
	`
)
