package file

const (
	SelectFileByID = `
		SELECT id, file_name, file_extension, file_size, owner_id, folder_id, storage_path, created_at, last_modified_at
		FROM files
		WHERE id = $1
	`
	SelectFilesByFolder = `
		SELECT id, file_name, file_extension, file_size, owner_id, folder_id, storage_path, created_at, last_modified_at
		FROM files
		WHERE folder_id = $1
		ORDER BY file_name
	`
	InsertFile = `
		INSERT INTO files (file_name, file_extension, file_size, owner_id, folder_id, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, file_name, file_extension, file_size, owner_id, folder_id, storage_path, created_at, last_modified_at
	`
	InsertFileVersion = `
		INSERT INTO file_versions (file_id, storage_path, created_by_id)
		VALUES ($1, $2, $3)
		RETURNING
		  id, file_id, storage_path, created_at, created_by_id
	`
	SelectFileVersions = `
		SELECT id, file_id, storage_path, created_at, created_by_id
		FROM file_versions
		WHERE file_id = $1
		ORDER BY created_at
	`
	DeleteFileVersions = `DELETE FROM file_versions WHERE file_id = $1`
	DeleteFileShares   = `DELETE FROM shares WHERE resource_id = $1`
	DeleteFileByID     = `DELETE FROM files WHERE id = $1`
)
