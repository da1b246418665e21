package folder

import (
	"file-storage-api/internal/domain/folder"
	fileDTO "file-storage-api/internal/interface/api/rest/dto/file"
)

func ToResponseFolder(fDomain folder.Folder) Folder {
	return Folder{
		ID:             fDomain.ID,
		Name:           fDomain.Name,
		OwnerID:        fDomain.OwnerID,
		ParentFolderID: fDomain.ParentFolderID,
		StoragePath:    fDomain.StoragePath,
		CreatedAt:      fDomain.CreatedAt,
	}
}

func ToResponseFolders(fsDomain folder.Folders) Folders {
	fs := make(Folders, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFolder(*f)
	}

	return fs
}

func ToResponseDetails(dDomain folder.Details) Details {
	return Details{
		Folder:     ToResponseFolder(dDomain.Folder),
		Files:      fileDTO.ToResponseFiles(dDomain.Files),
		Subfolders: ToResponseFolders(dDomain.Subfolders),
	}
}
