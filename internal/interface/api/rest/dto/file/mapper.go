package file

import (
	"file-storage-api/internal/domain/file"
)

func ToResponseFile(fDomain file.File) File {
	return File{
		ID:             fDomain.ID,
		FileName:       fDomain.FileName,
		FileExtension:  fDomain.FileExtension,
		FileSize:       fDomain.FileSize,
		OwnerID:        fDomain.OwnerID,
		FolderID:       fDomain.FolderID,
		StoragePath:    fDomain.StoragePath,
		CreatedAt:      fDomain.CreatedAt,
		LastModifiedAt: fDomain.LastModifiedAt,
	}
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}

func ToResponseVersion(vDomain file.Version) Version {
	return Version{
		ID:          vDomain.ID,
		FileID:      vDomain.FileID,
		StoragePath: vDomain.StoragePath,
		CreatedAt:   vDomain.CreatedAt,
		CreatedByID: vDomain.CreatedByID,
	}
}

func ToResponseVersions(vsDomain file.Versions) Versions {
	vs := make(Versions, len(vsDomain))
	for idx, v := range vsDomain {
		vs[idx] = ToResponseVersion(*v)
	}

	return vs
}
