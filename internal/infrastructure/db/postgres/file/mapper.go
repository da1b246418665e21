package file

import (
	domain "file-storage-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:            model.ID,
		FileName:      model.FileName,
		FileExtension: model.FileExtension,
		FileSize:      model.FileSize,
		OwnerID:       model.OwnerID,
		FolderID:      model.FolderID,
		StoragePath:   model.StoragePath,

		CreatedAt:      model.CreatedAt,
		LastModifiedAt: model.LastModifiedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}

func versionFromDBModel(model *Version) *domain.Version {
	return &domain.Version{
		ID:          model.ID,
		FileID:      model.FileID,
		StoragePath: model.StoragePath,
		CreatedAt:   model.CreatedAt,
		CreatedByID: model.CreatedByID,
	}
}

func versionsFromDBModels(models *Versions) domain.Versions {
	vs := make(domain.Versions, len(*models))
	for idx, v := range *models {
		vs[idx] = versionFromDBModel(v)
	}

	return vs
}
