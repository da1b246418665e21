package share

import (
	domain "file-storage-api/internal/domain/share"
)

func fromDBModel(model *Share) *domain.Share {
	var s = &domain.Share{
		ID:           model.ID,
		ResourceID:   model.ResourceID,
		ResourceType: domain.ResourceType(model.ResourceType),
		SharedByID:   model.SharedByID,
		SharedWithID: model.SharedWithID,
		Permission:   domain.Permission(model.Permission),
		CreatedAt:    model.CreatedAt,
		ExpiresAt:    model.ExpiresAt,
	}

	return s
}

func fromDBModels(models *Shares) domain.Shares {
	ss := make(domain.Shares, len(*models))
	for idx, s := range *models {
		ss[idx] = fromDBModel(s)
	}

	return ss
}
