package folder

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "file-storage-api/internal/domain/folder"
	"file-storage-api/internal/domain/user"
	"file-storage-api/internal/infrastructure/db/postgres"
)

// ErrStoragePathConflict surfaces when two callers race to create the
// same path segment; the storage_path unique index rejects the loser.
var ErrStoragePathConflict = errors.New("folder storage path already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateFolder(ctx context.Context, req domain.Folder) (*domain.Folder, error) {
	f := new(Folder)

	err := r.db.QueryRow(
		ctx,
		InsertFolder,
		req.Name, req.OwnerID, req.ParentFolderID, req.StoragePath,
	).Scan(
		&f.ID,
		&f.Name,
		&f.OwnerID,
		&f.ParentFolderID,
		&f.StoragePath,
		&f.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrStoragePathConflict
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchFolderByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	return r.fetchOne(ctx, SelectFolderByID, id)
}

func (r *Repository) FetchFolderByName(ctx context.Context, name string) (*domain.Folder, error) {
	return r.fetchOne(ctx, SelectFolderByName, name)
}

func (r *Repository) FetchFolderByStoragePath(ctx context.Context, storagePath string) (*domain.Folder, error) {
	return r.fetchOne(ctx, SelectFolderByStoragePath, storagePath)
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*domain.Folder, error) {
	f := new(Folder)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&f.ID,
		&f.Name,
		&f.OwnerID,
		&f.ParentFolderID,
		&f.StoragePath,
		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchSubfolders(ctx context.Context, parentID uuid.UUID) (domain.Folders, error) {
	return r.fetchMany(ctx, SelectSubfolders, parentID)
}

func (r *Repository) FetchUserFolders(ctx context.Context, ownerID user.ID) (domain.Folders, error) {
	return r.fetchMany(ctx, SelectUserFolders, ownerID)
}

func (r *Repository) fetchMany(ctx context.Context, query string, arg any) (domain.Folders, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Folders
	for rows.Next() {
		f := new(Folder)

		if err = rows.Scan(
			&f.ID,
			&f.Name,
			&f.OwnerID,
			&f.ParentFolderID,
			&f.StoragePath,
			&f.CreatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

// DeleteFolderCascade removes the folder tree and everything under it in
// one transaction: versions and shares of contained files, the files,
// shares on the folders, then the folder rows. Any failure rolls the
// whole transaction back. The blob keys of the removed files are
// returned for cleanup after commit.
func (r *Repository) DeleteFolderCascade(ctx context.Context, id uuid.UUID) (bool, []string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, nil, err
	}
	defer tx.Rollback(ctx)

	folderIDs, err := collectIDs(tx.Query(ctx, SelectFolderTreeIDs, id))
	if err != nil {
		return false, nil, err
	}
	if len(folderIDs) == 0 {
		return false, nil, nil
	}

	var (
		fileIDs  []uuid.UUID
		blobKeys []string
	)
	rows, err := tx.Query(ctx, SelectFileKeysInFolders, folderIDs)
	if err != nil {
		return false, nil, err
	}
	for rows.Next() {
		var (
			fileID uuid.UUID
			key    string
		)
		if err = rows.Scan(&fileID, &key); err != nil {
			rows.Close()
			return false, nil, err
		}
		fileIDs = append(fileIDs, fileID)
		blobKeys = append(blobKeys, key)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return false, nil, err
	}

	if len(fileIDs) > 0 {
		if _, err = tx.Exec(ctx, DeleteVersionsByFileIDs, fileIDs); err != nil {
			return false, nil, err
		}
		if _, err = tx.Exec(ctx, DeleteSharesByResources, fileIDs); err != nil {
			return false, nil, err
		}
		if _, err = tx.Exec(ctx, DeleteFilesByIDs, fileIDs); err != nil {
			return false, nil, err
		}
	}
	if _, err = tx.Exec(ctx, DeleteSharesByResources, folderIDs); err != nil {
		return false, nil, err
	}
	if _, err = tx.Exec(ctx, DeleteFoldersByIDs, folderIDs); err != nil {
		return false, nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return false, nil, err
	}

	return true, blobKeys, nil
}

func collectIDs(rows pgx.Rows, err error) ([]uuid.UUID, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
