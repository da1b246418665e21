package share

const (
	InsertShare = `
		INSERT INTO shares (resource_id, resource_type, shared_by_id, shared_with_id, permission, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, resource_id, resource_type, shared_by_id, shared_with_id, permission, created_at, expires_at
	`
	SelectSharesByResource = `
		SELECT id, resource_id, resource_type, shared_by_id, shared_with_id, permission, created_at, expires_at
		FROM shares
		WHERE resource_id = $1
		ORDER BY created_at
	`
)
