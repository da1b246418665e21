package file

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "file-storage-api/internal/domain/file"
	"file-storage-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

// CreateFile inserts the file row and its initial versions atomically.
func (r *Repository) CreateFile(ctx context.Context, req *domain.File) (*domain.File, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	f := new(File)
	err = tx.QueryRow(
		ctx,
		InsertFile,
		req.FileName, req.FileExtension, req.FileSize, req.OwnerID, req.FolderID, req.StoragePath,
	).Scan(
		&f.ID,
		&f.FileName,
		&f.FileExtension,
		&f.FileSize,
		&f.OwnerID,
		&f.FolderID,
		&f.StoragePath,
		&f.CreatedAt,
		&f.LastModifiedAt,
	)
	if err != nil {
		return nil, err
	}

	var vs Versions
	for _, reqV := range req.Versions {
		v := new(Version)
		if err = tx.QueryRow(
			ctx,
			InsertFileVersion,
			f.ID, reqV.StoragePath, reqV.CreatedByID,
		).Scan(
			&v.ID,
			&v.FileID,
			&v.StoragePath,
			&v.CreatedAt,
			&v.CreatedByID,
		); err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	out := fromDBModel(f)
	out.Versions = versionsFromDBModels(&vs)

	return out, nil
}

// FetchFileByID eager-loads the file's versions. nil, nil when absent.
func (r *Repository) FetchFileByID(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByID, id).Scan(
		&f.ID,
		&f.FileName,
		&f.FileExtension,
		&f.FileSize,
		&f.OwnerID,
		&f.FolderID,
		&f.StoragePath,
		&f.CreatedAt,
		&f.LastModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	versions, err := r.FetchFileVersions(ctx, f.ID)
	if err != nil {
		return nil, err
	}

	out := fromDBModel(f)
	out.Versions = versions

	return out, nil
}

func (r *Repository) FetchFilesByFolder(ctx context.Context, folderID uuid.UUID) (domain.Files, error) {
	rows, err := r.db.Query(ctx, SelectFilesByFolder, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.FileName,
			&f.FileExtension,
			&f.FileSize,
			&f.OwnerID,
			&f.FolderID,
			&f.StoragePath,
			&f.CreatedAt,
			&f.LastModifiedAt,
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

func (r *Repository) FetchFileVersions(ctx context.Context, fileID uuid.UUID) (domain.Versions, error) {
	rows, err := r.db.Query(ctx, SelectFileVersions, fileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vs Versions
	for rows.Next() {
		v := new(Version)

		if err = rows.Scan(
			&v.ID,
			&v.FileID,
			&v.StoragePath,
			&v.CreatedAt,
			&v.CreatedByID,
		); err != nil {
			return nil, err
		}

		vs = append(vs, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return versionsFromDBModels(&vs), nil
}

// DeleteFile removes the file with its versions and shares in one
// transaction. False when no file row matched.
func (r *Repository) DeleteFile(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, DeleteFileVersions, id); err != nil {
		return false, err
	}
	if _, err = tx.Exec(ctx, DeleteFileShares, id); err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, DeleteFileByID, id)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err = tx.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
