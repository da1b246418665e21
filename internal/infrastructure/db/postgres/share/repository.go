package share

import (
	"context"

	"github.com/google/uuid"

	domain "file-storage-api/internal/domain/share"
	"file-storage-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateShare(ctx context.Context, req domain.Share) (*domain.Share, error) {
	s := new(Share)

	err := r.db.QueryRow(
		ctx,
		InsertShare,
		req.ResourceID, int16(req.ResourceType), req.SharedByID, req.SharedWithID, int16(req.Permission), req.ExpiresAt,
	).Scan(
		&s.ID,
		&s.ResourceID,
		&s.ResourceType,
		&s.SharedByID,
		&s.SharedWithID,
		&s.Permission,
		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(s), err
}

func (r *Repository) FetchSharesByResource(ctx context.Context, resourceID uuid.UUID) (domain.Shares, error) {
	rows, err := r.db.Query(ctx, SelectSharesByResource, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ss Shares
	for rows.Next() {
		s := new(Share)

		if err = rows.Scan(
			&s.ID,
			&s.ResourceID,
			&s.ResourceType,
			&s.SharedByID,
			&s.SharedWithID,
			&s.Permission,
			&s.CreatedAt,
			&s.ExpiresAt,
		); err != nil {
			return nil, err
		}

		ss = append(ss, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ss), nil
}
