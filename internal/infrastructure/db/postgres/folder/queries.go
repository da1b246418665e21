package folder

const (
	SelectFolderByID = `
		SELECT id, name, owner_id, parent_folder_id, storage_path, created_at
		FROM folders
		WHERE id = $1
	`
	SelectFolderByName = `
		SELECT id, name, owner_id, parent_folder_id, storage_path, created_at
		FROM folders
		WHERE name = $1
		ORDER BY created_at
		LIMIT 1
	`
	SelectFolderByStoragePath = `
		SELECT id, name, owner_id, parent_folder_id, storage_path, created_at
		FROM folders
		WHERE storage_path = $1
	`
	SelectSubfolders = `
		SELECT id, name, owner_id, parent_folder_id, storage_path, created_at
		FROM folders
		WHERE parent_folder_id = $1
		ORDER BY name
	`
	SelectUserFolders = `
		SELECT id, name, owner_id, parent_folder_id, storage_path, created_at
		FROM folders
		WHERE owner_id = $1
		ORDER BY storage_path
	`
	InsertFolder = `
		INSERT INTO folders (name, owner_id, parent_folder_id, storage_path)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, name, owner_id, parent_folder_id, storage_path, created_at
	`

	// The folder, every descendant folder by parent link.
	SelectFolderTreeIDs = `
		WITH RECURSIVE tree AS (
			SELECT id FROM folders WHERE id = $1
			UNION ALL
			SELECT f.id FROM folders f JOIN tree t ON f.parent_folder_id = t.id
		)
		SELECT id FROM tree
	`
	SelectFileKeysInFolders = `
		SELECT id, storage_path FROM files WHERE folder_id = ANY($1)
	`
	DeleteVersionsByFileIDs = `DELETE FROM file_versions WHERE file_id = ANY($1)`
	DeleteSharesByResources = `DELETE FROM shares WHERE resource_id = ANY($1)`
	DeleteFilesByIDs        = `DELETE FROM files WHERE id = ANY($1)`
	DeleteFoldersByIDs      = `DELETE FROM folders WHERE id = ANY($1)`
)
