package folder

import (
	domain "file-storage-api/internal/domain/folder"
)

func fromDBModel(model *Folder) *domain.Folder {
	var f = &domain.Folder{
		ID:             model.ID,
		Name:           model.Name,
		OwnerID:        model.OwnerID,
		ParentFolderID: model.ParentFolderID,
		StoragePath:    model.StoragePath,

		CreatedAt: model.CreatedAt,
	}

	return f
}

func fromDBModels(models *Folders) domain.Folders {
	fs := make(domain.Folders, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
